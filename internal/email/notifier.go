package email

import (
	"totl_backend/internal/logger"
)

// DeliveryLog records every attempted send. Implemented by the email log
// repository; a nil log is valid and disables recording (tests).
type DeliveryLog interface {
	LogEmailSent(recipient, templateName, subject string, success bool, errorDetail string)
}

// Notifier is the transactional-mail facade the services talk to. Every send
// is attempted once and the attempt is logged regardless of outcome. Errors
// are returned so callers can decide to log-and-continue; by contract no
// business transaction may fail because a Notifier call failed.
type Notifier struct {
	provider Provider
	log      DeliveryLog
}

func NewNotifier(provider Provider, log DeliveryLog) *Notifier {
	return &Notifier{provider: provider, log: log}
}

func (n *Notifier) send(to, subject, templateName string, data TemplateData) error {
	err := n.provider.SendTemplate([]string{to}, subject, templateName, data)

	if n.log != nil {
		detail := ""
		if err != nil {
			detail = err.Error()
		}
		n.log.LogEmailSent(to, templateName, subject, err == nil, detail)
	}

	if err != nil {
		logger.Warn("email send failed", "template", templateName, "recipient", to, "error", err.Error())
	}
	return err
}

func (n *Notifier) SendApplicationAccepted(to, talentName, gigTitle string) error {
	return n.send(to, "Your application was accepted", TemplateApplicationAccepted, TemplateData{
		UserName: talentName,
		GigTitle: gigTitle,
	})
}

func (n *Notifier) SendBookingConfirmed(to, talentName, gigTitle, bookingDate, compensation string) error {
	return n.send(to, "Booking confirmed", TemplateBookingConfirmed, TemplateData{
		UserName:     talentName,
		GigTitle:     gigTitle,
		BookingDate:  bookingDate,
		Compensation: compensation,
	})
}

func (n *Notifier) SendApplicationRejected(to, talentName, gigTitle, reason string) error {
	return n.send(to, "Application update", TemplateApplicationRejected, TemplateData{
		UserName: talentName,
		GigTitle: gigTitle,
		Reason:   reason,
	})
}

func (n *Notifier) SendClientApproved(to, contactName, companyName string) error {
	return n.send(to, "Your client application was approved", TemplateClientApproved, TemplateData{
		UserName:    contactName,
		CompanyName: companyName,
	})
}

func (n *Notifier) SendClientRejected(to, contactName, notes string) error {
	return n.send(to, "Client application update", TemplateClientRejected, TemplateData{
		UserName: contactName,
		Message:  notes,
	})
}

func (n *Notifier) SendFollowUpAdmin(to, contactName, companyName string) error {
	return n.send(to, "Client application awaiting review", TemplateFollowUpAdmin, TemplateData{
		UserName:    contactName,
		CompanyName: companyName,
	})
}

func (n *Notifier) SendFollowUpApplicant(to, contactName, companyName string) error {
	return n.send(to, "Your client application is still under review", TemplateFollowUpApplicant, TemplateData{
		UserName:    contactName,
		CompanyName: companyName,
	})
}

func (n *Notifier) SendWelcome(to, userName, supportEmail string) error {
	return n.send(to, "Welcome to TOTL Agency", TemplateWelcome, TemplateData{
		UserName:     userName,
		SupportEmail: supportEmail,
	})
}
