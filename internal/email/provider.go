package email

// Provider sends email. Implementations must be safe for concurrent use.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendTemplate renders a named template and delivers the result.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error
}
