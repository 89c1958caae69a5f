package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/types"
)

type UserTagRepo interface {
  Create(ctx context.Context, tx *gorm.DB, userTags []*types.UserTag) ([]*types.UserTag, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserTag, error)
  FullDeleteByUserIDAndTagIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, tagIDs []uuid.UUID) error
}

type userTagRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserTagRepo(db *gorm.DB, baseLog *logger.Logger) UserTagRepo {
  repoLog := baseLog.With("repo", "UserTagRepo")
  return &userTagRepo{db: db, log: repoLog}
}

func (utr *userTagRepo) Create(ctx context.Context, tx *gorm.DB, userTags []*types.UserTag) ([]*types.UserTag, error) {
  transaction := tx
  if transaction == nil {
    transaction = utr.db
  }

  if len(userTags) == 0 {
    return []*types.UserTag{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&userTags).Error; err != nil {
    return nil, err
  }

  return userTags, nil
}

func (utr *userTagRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserTag, error) {
  transaction := tx
  if transaction == nil {
    transaction = utr.db
  }

  var results []*types.UserTag
  if err := transaction.WithContext(ctx).
    Preload("Tag").
    Where("user_id = ?", userID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (utr *userTagRepo) FullDeleteByUserIDAndTagIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, tagIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = utr.db
  }

  if len(tagIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("user_id = ? AND tag_id IN ?", userID, tagIDs).
    Delete(&types.UserTag{}).Error
}
