package auth

// LoginPageData encapsulates rendering state for the staff login screen.
type LoginPageData struct {
	Username    string
	Message     string
	Error       string
	FieldErrors map[string]string
	Next        string
	LoginPath   string
	CSRFToken   string
}
