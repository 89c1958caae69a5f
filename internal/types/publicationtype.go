package types

import (
  "time"
  "github.com/google/uuid"
)

type PublicationType struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Name      string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (PublicationType) TableName() string { return "publication_type" }
