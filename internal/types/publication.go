package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
)

type Publication struct {
  ID                uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
  UserID            uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
  User              *User             `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  LocationID        *uuid.UUID        `gorm:"type:uuid;index" json:"location_id,omitempty"`
  Location          *Location         `gorm:"constraint:OnDelete:SET NULL;foreignKey:LocationID;references:ID" json:"location,omitempty"`
  PublicationTypeID *uuid.UUID        `gorm:"type:uuid;index" json:"publication_type_id,omitempty"`
  PublicationType   *PublicationType  `gorm:"constraint:OnDelete:SET NULL;foreignKey:PublicationTypeID;references:ID" json:"publication_type,omitempty"`
  Name              string            `gorm:"column:name;not null" json:"name"`
  Description       string            `gorm:"column:description" json:"description"`
  Content           string            `gorm:"column:content" json:"content"`
  Metadata          datatypes.JSON    `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

  // VotesCount is resolved at read time from the votes table; it is never
  // written or migrated.
  VotesCount        int               `gorm:"->;-:migration" json:"votes_count"`

  Tags              []*PublicationTag `gorm:"foreignKey:PublicationID;references:ID" json:"tags,omitempty"`
  Votes             []*Vote           `gorm:"foreignKey:PublicationID;references:ID" json:"votes,omitempty"`

  CreatedAt         time.Time         `gorm:"not null" json:"created_at"`
  UpdatedAt         time.Time         `gorm:"not null" json:"updated_at"`
}

func (Publication) TableName() string { return "publication" }
