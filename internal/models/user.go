package models

// User represents the user model in the database
type User struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// SHA-256 hex digest of the active refresh token. Empty when the
	// user is logged out. The plaintext token lives only in the
	// client's cookie.
	RefreshTokenHash string `gorm:"size:64" json:"-"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
