package model

import (
	"time"

	"gorm.io/datatypes"
)

// Relative is one entry of a client's family contacts, stored as JSON.
type Relative struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone,omitempty"`
}

// Client type values.
const (
	ClientTypeLead   = "lead"
	ClientTypeClient = "client"
)

type Client struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`

	Phone       string                        `gorm:"type:text" json:"phone"`
	Email       string                        `gorm:"type:text" json:"email"`
	SocialLinks datatypes.JSONMap             `gorm:"type:text" json:"social_links"`
	Relatives   datatypes.JSONSlice[Relative] `gorm:"type:text" json:"relatives"`
	BirthDate   *time.Time                    `json:"birth_date"`
	Type        string                        `gorm:"type:text;not null;default:'lead';check:type IN ('lead','client')" json:"type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Client <-> Project: a project survives its client's removal
	Projects []Project `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"projects,omitempty"`
}

func (Client) TableName() string { return "clients" }
