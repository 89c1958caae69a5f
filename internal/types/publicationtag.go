package types

import (
  "time"
  "github.com/google/uuid"
)

type PublicationTag struct {
  ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  PublicationID uuid.UUID `gorm:"type:uuid;not null;index" json:"publication_id"`
  TagID         uuid.UUID `gorm:"type:uuid;not null;index" json:"tag_id"`
  Tag           *Tag      `gorm:"constraint:OnDelete:CASCADE;foreignKey:TagID;references:ID" json:"tag,omitempty"`
  CreatedAt     time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (PublicationTag) TableName() string { return "publication_tag" }
