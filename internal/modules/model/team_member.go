package model

import (
	"time"

	"gorm.io/datatypes"
)

type TeamMember struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`

	Role   string                      `gorm:"type:text" json:"role"`
	Phone  string                      `gorm:"type:text" json:"phone"`
	Skills datatypes.JSONSlice[string] `gorm:"type:text" json:"skills"`
	Rating int                         `gorm:"not null;default:0" json:"rating"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// TeamMember <-> Equipment checked out to them
	Equipment []Equipment `gorm:"foreignKey:CheckedOutTo;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"equipment,omitempty"`
}

func (TeamMember) TableName() string { return "team_members" }
