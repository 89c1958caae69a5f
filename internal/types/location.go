package types

import (
  "time"
  "github.com/google/uuid"
)

type Location struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Name      string    `gorm:"not null;column:name" json:"name"`
  Country   string    `gorm:"column:country" json:"country"`
  CreatedAt time.Time `gorm:"not null" json:"created_at,omitempty"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at,omitempty"`
}

func (Location) TableName() string { return "location" }
