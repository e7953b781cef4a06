package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contact represents one contact-form submission
type Contact struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone      string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Subject    string    `gorm:"type:varchar(255)" json:"subject,omitempty"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Newsletter bool      `gorm:"default:false" json:"newsletter"`
	Status     string    `gorm:"type:varchar(20);default:'new'" json:"status"`
	UserID     *uint     `gorm:"index" json:"user_id,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Contact) TableName() string {
	return "contact"
}

// Donation represents one donation submission
type Donation struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	DonationType  string          `gorm:"type:varchar(20);default:'one-time'" json:"donation_type"`
	PaymentMethod string          `gorm:"type:varchar(50);not null" json:"payment_method"`
	DonorName     string          `gorm:"type:varchar(255);not null" json:"donor_name"`
	DonorEmail    string          `gorm:"type:varchar(255);not null;index" json:"donor_email"`
	DonorPhone    string          `gorm:"type:varchar(50)" json:"donor_phone,omitempty"`
	Project       string          `gorm:"type:varchar(100)" json:"project,omitempty"`
	Message       string          `gorm:"type:text" json:"message,omitempty"`
	Anonymous     bool            `gorm:"default:false" json:"anonymous"`
	TransactionID string          `gorm:"type:varchar(64);uniqueIndex" json:"transaction_id"`
	UserID        *uint           `gorm:"index" json:"user_id,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Donation) TableName() string {
	return "donation"
}

// NewsletterSubscription represents a newsletter signup. Email is unique;
// re-subscribing flips Status back to active instead of adding a row.
type NewsletterSubscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Status    string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (NewsletterSubscription) TableName() string {
	return "newsletter"
}

// User represents a registered supporter account
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string     `gorm:"type:varchar(100)" json:"last_name"`
	Phone        string     `gorm:"type:varchar(50)" json:"phone,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	Donations    []Donation `gorm:"foreignKey:UserID" json:"-"`
	Contacts     []Contact  `gorm:"foreignKey:UserID" json:"-"`
	Payments     []Payment  `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "user"
}

// Payment tracks the gateway side of a donation. Created pending alongside
// its Donation in the same transaction; capture happens out of band.
type Payment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency   string          `gorm:"type:varchar(10);default:'USD'" json:"currency"`
	Gateway    string          `gorm:"type:varchar(50)" json:"gateway"`
	Status     string          `gorm:"type:varchar(20);default:'pending'" json:"status"`
	UserID     *uint           `gorm:"index" json:"user_id,omitempty"`
	DonationID *uint           `gorm:"index" json:"donation_id,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string {
	return "payment"
}

// Session is a server-side login session. The token travels in an HttpOnly
// cookie; logout deletes the row.
type Session struct {
	Token     string    `gorm:"primaryKey;type:varchar(64)" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// Campaign is a fundraising campaign shown on the transparency pages
type Campaign struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	GoalAmount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"goal_amount"`
	RaisedAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"raised_amount"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
