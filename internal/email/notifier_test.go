package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLog struct {
	entries []logEntry
}

type logEntry struct {
	recipient string
	template  string
	success   bool
	detail    string
}

func (r *recordingLog) LogEmailSent(recipient, templateName, subject string, success bool, errorDetail string) {
	r.entries = append(r.entries, logEntry{recipient, templateName, success, errorDetail})
}

func TestNotifierLogsEveryAttempt(t *testing.T) {
	provider := NewMockProvider()
	log := &recordingLog{}
	n := NewNotifier(provider, log)

	require.NoError(t, n.SendApplicationAccepted("ava@totl.test", "Ava", "Runway show"))
	require.Len(t, log.entries, 1)
	assert.Equal(t, "ava@totl.test", log.entries[0].recipient)
	assert.Equal(t, TemplateApplicationAccepted, log.entries[0].template)
	assert.True(t, log.entries[0].success)
	assert.Empty(t, log.entries[0].detail)
}

func TestNotifierLogsFailuresWithDetail(t *testing.T) {
	provider := NewMockProvider()
	provider.FailTemplate(TemplateBookingConfirmed)
	log := &recordingLog{}
	n := NewNotifier(provider, log)

	err := n.SendBookingConfirmed("ava@totl.test", "Ava", "Runway show", "2026-09-20", "$500")
	require.Error(t, err)

	require.Len(t, log.entries, 1)
	assert.False(t, log.entries[0].success)
	assert.Contains(t, log.entries[0].detail, "simulated delivery failure")
}

func TestNotifierNilLogIsSafe(t *testing.T) {
	provider := NewMockProvider()
	n := NewNotifier(provider, nil)

	require.NoError(t, n.SendWelcome("ava@totl.test", "Ava", "support@totl.test"))
	assert.Len(t, provider.Sent(), 1)
}
