package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names used by the notifier.
const (
	TemplateApplicationAccepted = "application_accepted"
	TemplateBookingConfirmed    = "booking_confirmed"
	TemplateApplicationRejected = "application_rejected"
	TemplateClientApproved      = "client_approved"
	TemplateClientRejected      = "client_rejected"
	TemplateFollowUpAdmin       = "client_followup_admin"
	TemplateFollowUpApplicant   = "client_followup_applicant"
	TemplateWelcome             = "welcome"
)

// TemplateManager renders the built-in transactional templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	builtins := map[string]string{
		TemplateApplicationAccepted: applicationAcceptedTemplate,
		TemplateBookingConfirmed:    bookingConfirmedTemplate,
		TemplateApplicationRejected: applicationRejectedTemplate,
		TemplateClientApproved:      clientApprovedTemplate,
		TemplateClientRejected:      clientRejectedTemplate,
		TemplateFollowUpAdmin:       followUpAdminTemplate,
		TemplateFollowUpApplicant:   followUpApplicantTemplate,
		TemplateWelcome:             welcomeTemplate,
	}

	for name, text := range builtins {
		tpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// Render executes a template with the given data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tpl, exists := tm.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}

const (
	applicationAcceptedTemplate = `
<!DOCTYPE html>
<html>
<body>
    <h1>Congratulations, {{.UserName}}!</h1>
    <p>Your application for <strong>{{.GigTitle}}</strong> has been accepted.</p>
    <p>The client will be in touch with the details. You can review the booking in your dashboard.</p>
    {{if .ActionURL}}<p><a href="{{.ActionURL}}">{{.ActionText}}</a></p>{{end}}
</body>
</html>`

	bookingConfirmedTemplate = `
<!DOCTYPE html>
<html>
<body>
    <h1>Booking confirmed</h1>
    <p>Hi {{.UserName}}, your booking for <strong>{{.GigTitle}}</strong> is confirmed.</p>
    <p>Date: {{.BookingDate}}</p>
    {{if .Compensation}}<p>Compensation: {{.Compensation}}</p>{{end}}
</body>
</html>`

	applicationRejectedTemplate = `
<!DOCTYPE html>
<html>
<body>
    <h1>Application update</h1>
    <p>Hi {{.UserName}}, your application for <strong>{{.GigTitle}}</strong> was not selected this time.</p>
    {{if .Reason}}<p>{{.Reason}}</p>{{end}}
    <p>New gigs are posted all the time. Keep your profile fresh.</p>
</body>
</html>`

	clientApprovedTemplate = `
<!DOCTYPE html>
<html>
<body>
    <h1>Welcome aboard, {{.CompanyName}}!</h1>
    <p>Hi {{.UserName}}, your client application has been approved. You can now post gigs and book talent.</p>
    {{if .ActionURL}}<p><a href="{{.ActionURL}}">{{.ActionText}}</a></p>{{end}}
</body>
</html>`

	clientRejectedTemplate = `
<!DOCTYPE html>
<html>
<body>
    <h1>Client application update</h1>
    <p>Hi {{.UserName}}, we are unable to approve your client application at this time.</p>
    {{if .Message}}<p>{{.Message}}</p>{{end}}
    <p>You are welcome to apply again with more information about your business.</p>
</body>
</html>`

	followUpAdminTemplate = `
<!DOCTYPE html>
<html>
<body>
    <h1>Pending client application</h1>
    <p>The application from <strong>{{.CompanyName}}</strong> ({{.UserName}}) has been pending for several days.</p>
    <p>Please review it in the admin dashboard.</p>
</body>
</html>`

	followUpApplicantTemplate = `
<!DOCTYPE html>
<html>
<body>
    <h1>We have not forgotten you</h1>
    <p>Hi {{.UserName}}, your client application for <strong>{{.CompanyName}}</strong> is still under review.</p>
    <p>We will get back to you shortly. Thanks for your patience.</p>
</body>
</html>`

	welcomeTemplate = `
<!DOCTYPE html>
<html>
<body>
    <h1>Welcome to TOTL Agency, {{.UserName}}!</h1>
    <p>Your account is ready. Complete your profile to start applying to gigs.</p>
    <p>Questions? Reach us at {{.SupportEmail}}.</p>
</body>
</html>`
)
