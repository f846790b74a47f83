package contract

import "strings"

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (r RegisterRequest) Validate() error {
	var v validator
	v.email("email", r.Email)
	v.password("password", r.Password)
	if r.FirstName != nil {
		v.maxLen("firstName", *r.FirstName, MaxTitleLen)
	}
	if r.LastName != nil {
		v.maxLen("lastName", *r.LastName, MaxTitleLen)
	}
	return v.err()
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var v validator
	v.required("email", r.Email, MaxEmailLen)
	v.required("password", r.Password, MaxTitleLen)
	return v.err()
}

// NormalizeEmail lowercases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateConversationRequest is the body of POST /api/conversations.
type CreateConversationRequest struct {
	Title string `json:"title"`
}

func (r CreateConversationRequest) Validate() error {
	var v validator
	v.required("title", r.Title, MaxTitleLen)
	return v.err()
}

// SendMessageRequest is the body of POST /api/conversations/:id/messages.
type SendMessageRequest struct {
	Content string `json:"content"`
}

func (r SendMessageRequest) Validate() error {
	var v validator
	v.required("content", r.Content, MaxMessageLen)
	return v.err()
}
