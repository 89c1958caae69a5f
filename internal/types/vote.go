package types

import (
  "time"
  "github.com/google/uuid"
)

// One vote per user per publication is enforced by the unique index, not by
// the services that insert votes.
type Vote struct {
  ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  PublicationID uuid.UUID `gorm:"type:uuid;not null;index:idx_vote_publication_user,unique,priority:1" json:"publication_id"`
  UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_vote_publication_user,unique,priority:2" json:"user_id"`
  CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (Vote) TableName() string { return "vote" }
