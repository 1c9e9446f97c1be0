package models

import "time"

// Person holds the identity data behind a user account.
type Person struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName   string     `gorm:"column:first_name;size:50;not null"`
	LastName    string     `gorm:"column:last_name;size:50;not null"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Person) TableName() string { return "person" }
