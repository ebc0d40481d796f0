package email

// Email is a single outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the payload handed to the HTML templates.
type TemplateData struct {
	UserName     string
	Subject      string
	Message      string
	GigTitle     string
	CompanyName  string
	BookingDate  string
	Compensation string
	Reason       string
	ActionURL    string
	ActionText   string
	SupportEmail string
}
