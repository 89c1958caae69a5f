package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/types"
)

type PublicationTagRepo interface {
  Create(ctx context.Context, tx *gorm.DB, publicationTags []*types.PublicationTag) ([]*types.PublicationTag, error)
  GetByPublicationIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) ([]*types.PublicationTag, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, publicationTagIDs []uuid.UUID) error
  FullDeleteByPublicationIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) error
}

type publicationTagRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPublicationTagRepo(db *gorm.DB, baseLog *logger.Logger) PublicationTagRepo {
  repoLog := baseLog.With("repo", "PublicationTagRepo")
  return &publicationTagRepo{db: db, log: repoLog}
}

func (ptr *publicationTagRepo) Create(ctx context.Context, tx *gorm.DB, publicationTags []*types.PublicationTag) ([]*types.PublicationTag, error) {
  transaction := tx
  if transaction == nil {
    transaction = ptr.db
  }

  if len(publicationTags) == 0 {
    return []*types.PublicationTag{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&publicationTags).Error; err != nil {
    return nil, err
  }

  return publicationTags, nil
}

func (ptr *publicationTagRepo) GetByPublicationIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) ([]*types.PublicationTag, error) {
  transaction := tx
  if transaction == nil {
    transaction = ptr.db
  }

  var results []*types.PublicationTag
  if len(publicationIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("publication_id IN ?", publicationIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ptr *publicationTagRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, publicationTagIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = ptr.db
  }

  if len(publicationTagIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("id IN ?", publicationTagIDs).
    Delete(&types.PublicationTag{}).Error
}

func (ptr *publicationTagRepo) FullDeleteByPublicationIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = ptr.db
  }

  if len(publicationIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("publication_id IN ?", publicationIDs).
    Delete(&types.PublicationTag{}).Error
}
