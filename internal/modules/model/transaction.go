package model

import "time"

// Transaction type values.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

type Transaction struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID *uint `gorm:"index" json:"project_id"`

	Type        string    `gorm:"type:text;not null;check:type IN ('income','expense')" json:"type"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"type:text" json:"category"`
	Date        time.Time `gorm:"not null" json:"date"`
	Description string    `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Transaction <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (Transaction) TableName() string { return "transactions" }
