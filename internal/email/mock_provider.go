package email

import (
	"fmt"
	"sync"
)

// SentEmail is one captured send in a MockProvider.
type SentEmail struct {
	To       []string
	Subject  string
	Template string
	Data     TemplateData
}

// MockProvider captures sends in memory. Tests use it to assert which
// notifications fired and to inject delivery failures.
type MockProvider struct {
	mu       sync.Mutex
	sent     []SentEmail
	failNext map[string]bool
}

func NewMockProvider() *MockProvider {
	return &MockProvider{failNext: make(map[string]bool)}
}

func (m *MockProvider) Send(e *Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentEmail{To: e.To, Subject: e.Subject})
	return nil
}

func (m *MockProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext[templateName] {
		return fmt.Errorf("simulated delivery failure for %s", templateName)
	}
	m.sent = append(m.sent, SentEmail{To: to, Subject: subject, Template: templateName, Data: data})
	return nil
}

// FailTemplate makes every subsequent send of templateName fail.
func (m *MockProvider) FailTemplate(templateName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext[templateName] = true
}

// Sent returns a copy of the captured sends.
func (m *MockProvider) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}

// SentTo filters captured sends by recipient.
func (m *MockProvider) SentTo(recipient string) []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []SentEmail
	for _, e := range m.sent {
		for _, to := range e.To {
			if to == recipient {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// CountTemplate reports how many sends used templateName.
func (m *MockProvider) CountTemplate(templateName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.sent {
		if e.Template == templateName {
			n++
		}
	}
	return n
}
