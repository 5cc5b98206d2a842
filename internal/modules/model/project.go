package model

import "time"

// Project status values.
const (
	ProjectStatusNew      = "new"
	ProjectStatusShooting = "shooting"
	ProjectStatusEditing  = "editing"
	ProjectStatusReview   = "review"
	ProjectStatusDone     = "done"
)

type Project struct {
	ID       uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID *uint `gorm:"index" json:"client_id"`

	Name       string     `gorm:"type:text;not null" json:"name"`
	Type       string     `gorm:"type:text" json:"type"`
	Date       *time.Time `json:"date"`
	Status     string     `gorm:"type:text;not null;default:'new';check:status IN ('new','shooting','editing','review','done')" json:"status"`
	GoldenHour string     `gorm:"type:text" json:"golden_hour"`
	Notes      string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Project <-> Client
	Client *Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"client,omitempty"`

	// Project <-> ProjectTask: a task cannot outlive its project
	Tasks []ProjectTask `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tasks,omitempty"`

	// Project <-> Transaction: bookkeeping survives the project
	Transactions []Transaction `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"transactions,omitempty"`

	// Project <-> CalendarEvent
	Events []CalendarEvent `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"events,omitempty"`
}

func (Project) TableName() string { return "projects" }
