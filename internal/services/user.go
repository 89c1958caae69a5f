package services

import (
  "context"
  "errors"
  "fmt"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/pubshare-backend/internal/apierr"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/normalization"
  "github.com/yungbote/pubshare-backend/internal/repos"
  "github.com/yungbote/pubshare-backend/internal/types"
)

type UserUpdateInput struct {
  FirstName *string
  LastName  *string
}

type UserService interface {
  GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
  ListAll(ctx context.Context) ([]*types.User, error)
  UpdateByID(ctx context.Context, userID uuid.UUID, input UserUpdateInput) (*types.User, error)
  ListVotes(ctx context.Context, userID uuid.UUID) ([]*types.Vote, error)
  ListPublications(ctx context.Context, userID uuid.UUID) ([]*types.Publication, error)
  ListInterests(ctx context.Context, userID uuid.UUID) ([]*types.UserTag, error)
  AddInterest(ctx context.Context, userID, tagID uuid.UUID) (*types.UserTag, error)
  RemoveInterest(ctx context.Context, userID, tagID uuid.UUID) error
}

type userService struct {
  db              *gorm.DB
  log             *logger.Logger
  userRepo        repos.UserRepo
  voteRepo        repos.VoteRepo
  publicationRepo repos.PublicationRepo
  tagRepo         repos.TagRepo
  userTagRepo     repos.UserTagRepo
}

func NewUserService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  voteRepo repos.VoteRepo,
  publicationRepo repos.PublicationRepo,
  tagRepo repos.TagRepo,
  userTagRepo repos.UserTagRepo,
) UserService {
  serviceLog := baseLog.With("service", "UserService")
  return &userService{
    db:              db,
    log:             serviceLog,
    userRepo:        userRepo,
    voteRepo:        voteRepo,
    publicationRepo: publicationRepo,
    tagRepo:         tagRepo,
    userTagRepo:     userTagRepo,
  }
}

func (us *userService) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
  user, err := us.userRepo.GetByID(ctx, nil, userID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("user_not_found", err)
    }
    return nil, fmt.Errorf("get user: %w", err)
  }
  return user, nil
}

func (us *userService) ListAll(ctx context.Context) ([]*types.User, error) {
  users, err := us.userRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("list users: %w", err)
  }
  return users, nil
}

func (us *userService) UpdateByID(ctx context.Context, userID uuid.UUID, input UserUpdateInput) (*types.User, error) {
  fields := map[string]interface{}{}
  if input.FirstName != nil {
    fields["first_name"] = normalization.TrimInputString(*input.FirstName)
  }
  if input.LastName != nil {
    fields["last_name"] = normalization.TrimInputString(*input.LastName)
  }

  if _, err := us.GetByID(ctx, userID); err != nil {
    return nil, err
  }
  if err := us.userRepo.UpdateFields(ctx, nil, userID, fields); err != nil {
    return nil, fmt.Errorf("update user: %w", err)
  }
  return us.GetByID(ctx, userID)
}

func (us *userService) ListVotes(ctx context.Context, userID uuid.UUID) ([]*types.Vote, error) {
  votes, err := us.voteRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    return nil, fmt.Errorf("list user votes: %w", err)
  }
  return votes, nil
}

func (us *userService) ListPublications(ctx context.Context, userID uuid.UUID) ([]*types.Publication, error) {
  publications, err := us.publicationRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    return nil, fmt.Errorf("list user publications: %w", err)
  }
  return publications, nil
}

func (us *userService) ListInterests(ctx context.Context, userID uuid.UUID) ([]*types.UserTag, error) {
  interests, err := us.userTagRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("list interests: %w", err)
  }
  return interests, nil
}

func (us *userService) AddInterest(ctx context.Context, userID, tagID uuid.UUID) (*types.UserTag, error) {
  tags, err := us.tagRepo.GetByIDs(ctx, nil, []uuid.UUID{tagID})
  if err != nil {
    return nil, fmt.Errorf("load tag: %w", err)
  }
  if len(tags) == 0 {
    return nil, apierr.NotFound("tag_not_found", fmt.Errorf("unknown tag"))
  }

  userTag := &types.UserTag{
    ID:     uuid.New(),
    UserID: userID,
    TagID:  tagID,
  }
  if _, err := us.userTagRepo.Create(ctx, nil, []*types.UserTag{userTag}); err != nil {
    if errors.Is(err, gorm.ErrDuplicatedKey) {
      return nil, apierr.Conflict("interest_exists", err)
    }
    return nil, fmt.Errorf("create interest: %w", err)
  }
  return userTag, nil
}

func (us *userService) RemoveInterest(ctx context.Context, userID, tagID uuid.UUID) error {
  if err := us.userTagRepo.FullDeleteByUserIDAndTagIDs(ctx, nil, userID, []uuid.UUID{tagID}); err != nil {
    return fmt.Errorf("remove interest: %w", err)
  }
  return nil
}
