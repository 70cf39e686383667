// internal/models/generation_task.go
package models

// GenerationTask queues a motorcycle model name for AI-assisted ingestion.
// Tasks are consumed in insertion order, one per ingestion run.
type GenerationTask struct {
	BaseModel
	Name   string           `json:"name" gorm:"size:255;not null"`
	Status GenerationStatus `json:"status" gorm:"type:varchar(20);not null;index"`
}

func (GenerationTask) TableName() string {
	return "motorinci_generation_tasks"
}
