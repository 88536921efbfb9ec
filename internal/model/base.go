package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the UUID primary key and the timestamp pair shared by
// every warehouse entity. UpdatedAt stays NULL until the record is modified
// for the first time; GORM's automatic touch is disabled so that services
// control when it is stamped.
type BaseModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// Hook Before Create to generate the UUID automatically
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	base.ID = uuid.New()
	return
}

// Touch stamps UpdatedAt with the current time.
func (base *BaseModel) Touch() {
	now := time.Now()
	base.UpdatedAt = &now
}
