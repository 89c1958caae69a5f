package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/types"
)

type TagRepo interface {
  Create(ctx context.Context, tx *gorm.DB, tags []*types.Tag) ([]*types.Tag, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, tagIDs []uuid.UUID) ([]*types.Tag, error)
  GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.Tag, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Tag, error)
}

type tagRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
  repoLog := baseLog.With("repo", "TagRepo")
  return &tagRepo{db: db, log: repoLog}
}

func (tr *tagRepo) Create(ctx context.Context, tx *gorm.DB, tags []*types.Tag) ([]*types.Tag, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  if len(tags) == 0 {
    return []*types.Tag{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&tags).Error; err != nil {
    return nil, err
  }

  return tags, nil
}

func (tr *tagRepo) GetByIDs(ctx context.Context, tx *gorm.DB, tagIDs []uuid.UUID) ([]*types.Tag, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var results []*types.Tag
  if len(tagIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", tagIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (tr *tagRepo) GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.Tag, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var results []*types.Tag
  if len(names) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("name IN ?", names).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (tr *tagRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Tag, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var results []*types.Tag
  if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
