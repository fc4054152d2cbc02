package domain

// Company is an employer that owns job offers. The NIT is its tax
// registration id and is globally unique.
type Company struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null"`
	NIT  string `json:"nit" gorm:"column:nit;size:20;uniqueIndex;not null"`
}
