package models

// Product represents a product in the catalog.
// The ID is assigned by the database on create and is immutable afterwards.
type Product struct {
	ID          int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null" validate:"required,gt=0"`
	Stock       int     `json:"stock" gorm:"not null" validate:"gt=0"`
}
