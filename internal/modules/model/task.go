package model

import "time"

// Task status values.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "inprogress"
	TaskStatusCompleted  = "completed"
)

type ProjectTask struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID uint `gorm:"not null;index" json:"project_id"`

	Title   string     `gorm:"type:text;not null" json:"title"`
	Status  string     `gorm:"type:text;not null;default:'todo';check:status IN ('todo','inprogress','completed')" json:"status"`
	DueTime *time.Time `json:"due_time"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// ProjectTask <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`

	// ProjectTask <-> ChecklistItem: items are owned by exactly one task
	Checklist []ChecklistItem `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"checklist,omitempty"`
}

func (ProjectTask) TableName() string { return "tasks" }

type ChecklistItem struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID uint `gorm:"not null;index" json:"task_id"`

	Text        string `gorm:"type:text;not null" json:"text"`
	IsCompleted bool   `gorm:"not null;default:false" json:"is_completed"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// ChecklistItem <-> ProjectTask
	Task *ProjectTask `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"task,omitempty"`
}

func (ChecklistItem) TableName() string { return "checklist_items" }
