package domain

// Postulation is an applicant's application to an offer. Duplicate
// (user, offer) pairs are allowed; deleting either side cascades to the
// join row.
type Postulation struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	UserID  uint      `json:"user" gorm:"column:user_id;not null"`
	User    Applicant `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OfferID uint      `json:"offer" gorm:"not null"`
	Offer   Offer     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
