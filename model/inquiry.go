package model

import "time"

// Inquiry represents a contact-page message. Stored only; follow-up happens
// over email.
type Inquiry struct {
	ID        string  `gorm:"primary_key;default:gen_random_uuid()"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Email     string  `gorm:"type:varchar(255);not null"`
	Phone     *string `gorm:"type:varchar(50)"`
	Message   string  `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName sets the table name for GORM
func (Inquiry) TableName() string {
	return "contact_inquiries"
}

// SubmitInquiryRequest represents the contact form submission
type SubmitInquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// InquiryResponse acknowledges a stored inquiry
type InquiryResponse struct {
	InquiryID string    `json:"inquiry_id"`
	CreatedAt time.Time `json:"created_at"`
}
