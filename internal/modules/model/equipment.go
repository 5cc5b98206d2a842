package model

import "time"

// Equipment status values.
const (
	EquipmentStatusAvailable = "available"
	EquipmentStatusInUse     = "in-use"
	EquipmentStatusRepair    = "repair"
)

type Equipment struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`

	SerialNumber   string     `gorm:"type:text" json:"serial_number"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	Condition      string     `gorm:"type:text" json:"condition"`
	ShutterCount   int        `gorm:"not null;default:0" json:"shutter_count"`
	MaxShutterLife int        `gorm:"not null;default:0" json:"max_shutter_life"`
	Status         string     `gorm:"type:text;not null;default:'available';check:status IN ('available','in-use','repair')" json:"status"`

	CheckedOutTo   *uint      `gorm:"index" json:"checked_out_to"`
	CheckedOutDate *time.Time `json:"checked_out_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Equipment <-> TeamMember (checkout)
	Holder *TeamMember `gorm:"foreignKey:CheckedOutTo;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"holder,omitempty"`
}

func (Equipment) TableName() string { return "equipment" }
