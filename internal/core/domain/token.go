package domain

import "time"

// Token is the opaque bearer credential presented as
// "Authorization: Token <key>". One token per applicant; logins reuse the
// existing row. Deleting the applicant cascades to the token, so a key can
// never outlive its owner.
type Token struct {
	Key       string    `json:"token" gorm:"size:40;primaryKey"`
	UserID    uint      `json:"user_id" gorm:"column:user_id;uniqueIndex;not null"`
	User      Applicant `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"-"`
}
