package models

import "time"

type Facility struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type Workspace struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AdminID      uint      `gorm:"not null;index" json:"admin_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Address      string    `gorm:"size:255;not null" json:"address"`
	Description  string    `gorm:"type:text" json:"description"`
	PricePerHour float64   `gorm:"not null" json:"price_per_hour"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Admin      *User      `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"-"`
	Facilities []Facility `gorm:"many2many:workspace_facilities" json:"facilities"`
}
