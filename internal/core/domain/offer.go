package domain

import "time"

// Offer is a job posting owned by a Company. Deleting the company cascades
// to its offers.
type Offer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Salary      Salary    `json:"salary" gorm:"type:numeric(10,2);not null"`
	CompanyID   uint      `json:"company" gorm:"not null"`
	Company     Company   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Skills      string    `json:"skills" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
