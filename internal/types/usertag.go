package types

import (
  "time"
  "github.com/google/uuid"
)

// UserTag records a tag the user follows as an interest.
type UserTag struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_tag,unique,priority:1" json:"user_id"`
  TagID     uuid.UUID `gorm:"type:uuid;not null;index:idx_user_tag,unique,priority:2" json:"tag_id"`
  Tag       *Tag      `gorm:"constraint:OnDelete:CASCADE;foreignKey:TagID;references:ID" json:"tag,omitempty"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserTag) TableName() string { return "user_tag" }
