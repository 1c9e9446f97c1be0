package models

import "time"

// User represents the canonical identity entity. Accounts are never removed;
// deactivation flips is_active. IsAdmin and IsActive are independent flags.
type User struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;size:50;not null;uniqueIndex"`
	Email        string    `gorm:"column:email;size:50;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password;size:200;not null"`
	// No gorm default tag: with one, GORM drops a false value from the INSERT
	// and the account would be created active regardless.
	IsActive     bool      `gorm:"column:is_active;not null"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false"`
	PersonID     *uint     `gorm:"column:person_id"`
	Person       *Person   `gorm:"foreignKey:PersonID"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "user" }
