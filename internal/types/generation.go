package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Generation is one persisted result of a component-generation request.
// Rows are created once by the pipeline and never updated or deleted.
type Generation struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ComponentName string         `gorm:"not null;column:component_name" json:"componentName"`
	ComponentType string         `gorm:"not null;index;column:component_type" json:"componentType"`
	ResultCode    string         `gorm:"not null;type:text;column:result_code" json:"resultCode"`
	Notes         string         `gorm:"type:text;column:notes" json:"notes"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User          *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Stats         datatypes.JSON `gorm:"type:jsonb;column:stats" json:"stats,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:now();index" json:"createdAt"`
	CompletedAt   *time.Time     `gorm:"column:completed_at" json:"completedAt,omitempty"`
}

func (Generation) TableName() string { return "generation" }
