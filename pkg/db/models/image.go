package models

import "time"

// Image stores a named URL; no binary payloads are kept. Images carry no
// status column and are removed with a hard delete.
type Image struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:100;not null"`
	URL       string    `gorm:"column:url;size:255;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Image) TableName() string { return "image" }
