package models

import "time"

// Admin is a back-office user. Password holds a bcrypt hash, never the
// plain credential.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Setting is a key/value pair for site-wide configuration stored in the
// database (site name, tagline and similar).
type Setting struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SettingKey string `gorm:"uniqueIndex;not null" json:"setting_key"`
	Value      string `gorm:"type:text" json:"value"`
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}
