package services

import (
  "context"
  "errors"
  "fmt"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/pubshare-backend/internal/apierr"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/repos"
  "github.com/yungbote/pubshare-backend/internal/types"
)

type VoteService interface {
  Create(ctx context.Context, tx *gorm.DB, publicationID, userID uuid.UUID) (*types.Vote, error)
  ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Vote, error)
}

type voteService struct {
  log      *logger.Logger
  voteRepo repos.VoteRepo
}

func NewVoteService(baseLog *logger.Logger, voteRepo repos.VoteRepo) VoteService {
  serviceLog := baseLog.With("service", "VoteService")
  return &voteService{
    log:      serviceLog,
    voteRepo: voteRepo,
  }
}

func (vs *voteService) Create(ctx context.Context, tx *gorm.DB, publicationID, userID uuid.UUID) (*types.Vote, error) {
  vote := &types.Vote{
    ID:            uuid.New(),
    PublicationID: publicationID,
    UserID:        userID,
  }
  if _, err := vs.voteRepo.Create(ctx, tx, []*types.Vote{vote}); err != nil {
    if errors.Is(err, gorm.ErrDuplicatedKey) {
      return nil, apierr.Conflict("vote_already_cast", err)
    }
    return nil, fmt.Errorf("create vote: %w", err)
  }
  return vote, nil
}

func (vs *voteService) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Vote, error) {
  votes, err := vs.voteRepo.GetByUserIDs(ctx, tx, []uuid.UUID{userID})
  if err != nil {
    return nil, fmt.Errorf("list votes: %w", err)
  }
  return votes, nil
}
