package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestNormalizeToStringArray(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["runway","editorial"]`, []string{"runway", "editorial"}},
		{"json-encoded string array", `"[\"runway\",\"editorial\"]"`, []string{"runway", "editorial"}},
		{"comma separated string", `"runway, editorial"`, []string{"runway", "editorial"}},
		{"bare legacy text", `runway, editorial`, []string{"runway", "editorial"}},
		{"whitespace noise", `[" runway ","", "  editorial"]`, []string{"runway", "editorial"}},
		{"empty string", `""`, nil},
		{"empty array", `[]`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeToStringArray(datatypes.JSON(tc.raw))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Nil(t, NormalizeToStringArray(nil))
	assert.Nil(t, NormalizeToStringArray(datatypes.JSON("")))
}

func TestStringArrayToJSONRoundTrip(t *testing.T) {
	values := []string{"runway", "editorial"}
	assert.Equal(t, values, NormalizeToStringArray(StringArrayToJSON(values)))

	// nil writes an empty array, never null.
	assert.Equal(t, datatypes.JSON("[]"), StringArrayToJSON(nil))
}
