package models

// User represents a registered account. Rows are immutable after signup.
type User struct {
	Base
	FirstName string     `gorm:"size:50" json:"first_name"`
	LastName  string     `gorm:"size:50" json:"last_name"`
	Email     string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone     string     `gorm:"size:20" json:"phone"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}
