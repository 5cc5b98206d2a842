package model

import "time"

type CalendarEvent struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID *uint `gorm:"index" json:"project_id"`

	Title string     `gorm:"type:text;not null" json:"title"`
	Start time.Time  `gorm:"not null" json:"start"`
	End   *time.Time `json:"end"`
	Type  string     `gorm:"type:text" json:"type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// CalendarEvent <-> Project: a linked event is the project's schedule entry
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (CalendarEvent) TableName() string { return "calendar_events" }
