package models

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// NormalizeToStringArray decodes a jsonb column that historically held
// specialties/languages in three shapes: a proper JSON array, a JSON string
// containing an encoded array, or a comma-separated string. All reads of
// those columns go through here; nothing else in the codebase parses them.
func NormalizeToStringArray(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}

	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil {
		return trimAll(arr)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return normalizeString(s)
	}

	// Legacy rows were written as bare text, not valid JSON at all.
	return normalizeString(string(raw))
}

// StringArrayToJSON is the write-side counterpart: values always go to the
// store as a proper JSON array.
func StringArrayToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func normalizeString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// The string itself may hold an encoded JSON array.
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return trimAll(arr)
		}
	}

	return trimAll(strings.Split(s, ","))
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
