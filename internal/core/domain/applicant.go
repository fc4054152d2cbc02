package domain

import "time"

// Applicant models a registered job seeker. The password is stored only as a
// bcrypt hash and is never serialized.
type Applicant struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	Username             string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	PasswordHash         string    `json:"-" gorm:"size:128;not null"`
	IdentificationNumber string    `json:"identification_number" gorm:"size:20;uniqueIndex;not null"`
	Email                string    `json:"email" gorm:"size:254"`
	FirstName            string    `json:"first_name" gorm:"size:150"`
	LastName             string    `json:"last_name" gorm:"size:150"`
	ProfileDescription   string    `json:"profile_description" gorm:"type:text"`
	PhoneNumber          string    `json:"phone_number" gorm:"size:20"`
	IsAdmin              bool      `json:"-" gorm:"not null;default:false"`
	DateJoined           time.Time `json:"date_joined" gorm:"not null"`
}

// FullName follows the original portal convention: username plus last name.
func (a *Applicant) FullName() string {
	return a.Username + " " + a.LastName
}
