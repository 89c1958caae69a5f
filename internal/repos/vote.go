package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/types"
)

type VoteRepo interface {
  Create(ctx context.Context, tx *gorm.DB, votes []*types.Vote) ([]*types.Vote, error)
  GetByPublicationIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) ([]*types.Vote, error)
  GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Vote, error)
  CountByPublicationID(ctx context.Context, tx *gorm.DB, publicationID uuid.UUID) (int64, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, voteIDs []uuid.UUID) error
  FullDeleteByPublicationIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) error
}

type voteRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewVoteRepo(db *gorm.DB, baseLog *logger.Logger) VoteRepo {
  repoLog := baseLog.With("repo", "VoteRepo")
  return &voteRepo{db: db, log: repoLog}
}

func (vr *voteRepo) Create(ctx context.Context, tx *gorm.DB, votes []*types.Vote) ([]*types.Vote, error) {
  transaction := tx
  if transaction == nil {
    transaction = vr.db
  }

  if len(votes) == 0 {
    return []*types.Vote{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&votes).Error; err != nil {
    return nil, err
  }

  return votes, nil
}

func (vr *voteRepo) GetByPublicationIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) ([]*types.Vote, error) {
  transaction := tx
  if transaction == nil {
    transaction = vr.db
  }

  var results []*types.Vote
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

func (vr *voteRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Vote, error) {
  transaction := tx
  if transaction == nil {
    transaction = vr.db
  }

  var results []*types.Vote
  if len(userIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id IN ?", userIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (vr *voteRepo) CountByPublicationID(ctx context.Context, tx *gorm.DB, publicationID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = vr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Vote{}).
    Where("publication_id = ?", publicationID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (vr *voteRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, voteIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = vr.db
  }

  if len(voteIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("id IN ?", voteIDs).
    Delete(&types.Vote{}).Error
}

func (vr *voteRepo) FullDeleteByPublicationIDs(ctx context.Context, tx *gorm.DB, publicationIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = vr.db
  }

  if len(publicationIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("publication_id IN ?", publicationIDs).
    Delete(&types.Vote{}).Error
}
