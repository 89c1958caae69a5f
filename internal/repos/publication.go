package repos

import (
  "context"
  "strings"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/types"
)

// votesCountSelect resolves the derived votes_count column as a correlated
// count over the votes table, cast to integer. It is recomputed on every
// read and never stored.
const votesCountSelect = `CAST((SELECT COUNT(*) FROM "vote" WHERE "vote"."publication_id" = "publication"."id") AS integer) AS votes_count`

// ScopeViewPublic restricts list reads to the publicly visible projection:
// content and metadata stay detail-only.
func ScopeViewPublic(db *gorm.DB) *gorm.DB {
  return db.Select(`"publication"."id", "publication"."user_id", "publication"."location_id", "publication"."publication_type_id", "publication"."name", "publication"."description", "publication"."created_at", "publication"."updated_at", ` + votesCountSelect)
}

// ScopeViewDetail exposes every stored attribute plus votes_count.
func ScopeViewDetail(db *gorm.DB) *gorm.DB {
  return db.Select(`"publication".*, ` + votesCountSelect)
}

type PublicationListFilter struct {
  ID     *uuid.UUID
  Name   string
  Limit  *int
  Offset *int
}

type PublicationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, publications []*types.Publication) ([]*types.Publication, error)
  FindAndCountPublic(ctx context.Context, tx *gorm.DB, filter PublicationListFilter) (int64, []*types.Publication, error)
  GetDetailByID(ctx context.Context, tx *gorm.DB, publicationID uuid.UUID) (*types.Publication, error)
  GetWithRefsByID(ctx context.Context, tx *gorm.DB, publicationID uuid.UUID) (*types.Publication, error)
  GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Publication, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) error
}

type publicationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPublicationRepo(db *gorm.DB, baseLog *logger.Logger) PublicationRepo {
  repoLog := baseLog.With("repo", "PublicationRepo")
  return &publicationRepo{db: db, log: repoLog}
}

func (pr *publicationRepo) Create(ctx context.Context, tx *gorm.DB, publications []*types.Publication) ([]*types.Publication, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if len(publications) == 0 {
    return []*types.Publication{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&publications).Error; err != nil {
    return nil, err
  }

  return publications, nil
}

func applyListFilter(q *gorm.DB, filter PublicationListFilter) *gorm.DB {
  if filter.ID != nil {
    q = q.Where(`"publication"."id" = ?`, *filter.ID)
  }
  if filter.Name != "" {
    q = q.Where(`LOWER("publication"."name") LIKE ?`, "%"+strings.ToLower(filter.Name)+"%")
  }
  return q
}

func (pr *publicationRepo) FindAndCountPublic(ctx context.Context, tx *gorm.DB, filter PublicationListFilter) (int64, []*types.Publication, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  base := applyListFilter(transaction.WithContext(ctx).Model(&types.Publication{}), filter)

  // Counted separately with a distinct id so join multiplication in the row
  // query cannot inflate the total.
  var total int64
  if err := base.Session(&gorm.Session{}).
    Distinct(`"publication"."id"`).
    Count(&total).Error; err != nil {
    return 0, nil, err
  }

  rows := []*types.Publication{}
  q := base.Session(&gorm.Session{}).
    Scopes(ScopeViewPublic).
    Preload("User", func(db *gorm.DB) *gorm.DB {
      return db.Select("id", "first_name")
    }).
    Preload("Tags", func(db *gorm.DB) *gorm.DB {
      return db.Select("id", "publication_id", "tag_id")
    }).
    Preload("Tags.Tag", func(db *gorm.DB) *gorm.DB {
      return db.Select("id", "name")
    }).
    Order(`"publication"."created_at" DESC`)
  if filter.Limit != nil && filter.Offset != nil {
    q = q.Limit(*filter.Limit).Offset(*filter.Offset)
  }
  if err := q.Find(&rows).Error; err != nil {
    return 0, nil, err
  }
  return total, rows, nil
}

func (pr *publicationRepo) GetDetailByID(ctx context.Context, tx *gorm.DB, publicationID uuid.UUID) (*types.Publication, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var result types.Publication
  if err := transaction.WithContext(ctx).
    Scopes(ScopeViewDetail).
    Preload("User", func(db *gorm.DB) *gorm.DB {
      return db.Select("id", "first_name")
    }).
    Preload("Location", func(db *gorm.DB) *gorm.DB {
      return db.Select("id", "name", "country")
    }).
    Preload("PublicationType", func(db *gorm.DB) *gorm.DB {
      return db.Select("id", "name")
    }).
    Preload("Tags", func(db *gorm.DB) *gorm.DB {
      return db.Select("id", "publication_id", "tag_id")
    }).
    Preload("Tags.Tag", func(db *gorm.DB) *gorm.DB {
      return db.Select("id", "name")
    }).
    Preload("Votes").
    Where(`"publication"."id" = ?`, publicationID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (pr *publicationRepo) GetWithRefsByID(ctx context.Context, tx *gorm.DB, publicationID uuid.UUID) (*types.Publication, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var result types.Publication
  if err := transaction.WithContext(ctx).
    Preload("Votes").
    Preload("Tags").
    Where(`"publication"."id" = ?`, publicationID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (pr *publicationRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Publication, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Publication
  if len(userIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Scopes(ScopeViewPublic).
    Where(`"publication"."user_id" IN ?`, userIDs).
    Order(`"publication"."created_at" DESC`).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *publicationRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if len(publicationIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("id IN ?", publicationIDs).
    Delete(&types.Publication{}).Error
}
