package services

import (
  "context"
  "errors"
  "fmt"

  "github.com/google/uuid"
  "golang.org/x/sync/errgroup"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/yungbote/pubshare-backend/internal/apierr"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/repos"
  "github.com/yungbote/pubshare-backend/internal/types"
)

type PublicationCreateInput struct {
  Name              string
  Description       string
  Content           string
  Metadata          datatypes.JSON
  LocationID        *uuid.UUID
  PublicationTypeID *uuid.UUID
  TagIDs            []uuid.UUID
}

// CreateResult distinguishes a fully successful create from one where the
// publication row committed but a post-commit submission failed. The row is
// durable in both cases; PartialErr carries whatever went wrong afterwards.
type CreateResult struct {
  Publication  *types.Publication
  TagsAttached bool
  VoteCast     bool
  PartialErr   error
}

func (r *CreateResult) Complete() bool {
  return r != nil && r.PartialErr == nil
}

type PublicationService interface {
  List(ctx context.Context, filter repos.PublicationListFilter) (int64, []*types.Publication, error)
  Create(ctx context.Context, userID uuid.UUID, input PublicationCreateInput) (*CreateResult, error)
  GetByID(ctx context.Context, publicationID uuid.UUID) (*types.Publication, error)
  Remove(ctx context.Context, publicationID uuid.UUID) (*types.Publication, error)
}

type publicationService struct {
  db                    *gorm.DB
  log                   *logger.Logger
  publicationRepo       repos.PublicationRepo
  voteRepo              repos.VoteRepo
  publicationTagRepo    repos.PublicationTagRepo
  publicationTagService PublicationTagService
  voteService           VoteService
}

func NewPublicationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  publicationRepo repos.PublicationRepo,
  voteRepo repos.VoteRepo,
  publicationTagRepo repos.PublicationTagRepo,
  publicationTagService PublicationTagService,
  voteService VoteService,
) PublicationService {
  serviceLog := baseLog.With("service", "PublicationService")
  return &publicationService{
    db:                    db,
    log:                   serviceLog,
    publicationRepo:       publicationRepo,
    voteRepo:              voteRepo,
    publicationTagRepo:    publicationTagRepo,
    publicationTagService: publicationTagService,
    voteService:           voteService,
  }
}

func (ps *publicationService) List(ctx context.Context, filter repos.PublicationListFilter) (int64, []*types.Publication, error) {
  total, rows, err := ps.publicationRepo.FindAndCountPublic(ctx, nil, filter)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return 0, nil, apierr.NotFound("publications_not_found", err)
    }
    return 0, nil, fmt.Errorf("list publications: %w", err)
  }
  return total, rows, nil
}

// Create is a two-phase composite operation. Phase 1 commits the publication
// row in its own transaction; a phase-1 failure rolls back and returns a hard
// error. Phase 2 runs only after that commit and submits the tag associations
// and the creator's auto-vote; phase-2 failures cannot undo the committed row
// and degrade the result instead.
func (ps *publicationService) Create(ctx context.Context, userID uuid.UUID, input PublicationCreateInput) (*CreateResult, error) {
  publication := &types.Publication{
    ID:                uuid.New(),
    UserID:            userID,
    Name:              input.Name,
    Description:       input.Description,
    Content:           input.Content,
    Metadata:          input.Metadata,
    LocationID:        input.LocationID,
    PublicationTypeID: input.PublicationTypeID,
  }

  if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    _, err := ps.publicationRepo.Create(ctx, tx, []*types.Publication{publication})
    return err
  }); err != nil {
    ps.log.Error("Create publication failed", "error", err, "user_id", userID)
    return nil, fmt.Errorf("create publication: %w", err)
  }

  // The two submissions are independent of each other and of any ordering;
  // each runs against the base connection, never the closed transaction.
  var tagErr, voteErr error
  g := new(errgroup.Group)
  g.Go(func() error {
    if len(input.TagIDs) == 0 {
      return nil
    }
    records := make([]*types.PublicationTag, 0, len(input.TagIDs))
    for _, tagID := range input.TagIDs {
      records = append(records, &types.PublicationTag{
        ID:            uuid.New(),
        TagID:         tagID,
        PublicationID: publication.ID,
      })
    }
    if _, err := ps.publicationTagService.CreateWithBulk(ctx, nil, records); err != nil {
      tagErr = err
    }
    return nil
  })
  g.Go(func() error {
    if _, err := ps.voteService.Create(ctx, nil, publication.ID, userID); err != nil {
      voteErr = err
    }
    return nil
  })
  _ = g.Wait()

  result := &CreateResult{
    Publication:  publication,
    TagsAttached: tagErr == nil,
    VoteCast:     voteErr == nil,
    PartialErr:   errors.Join(tagErr, voteErr),
  }
  if result.PartialErr != nil {
    ps.log.Warn("Publication committed but post-commit submissions failed",
      "publication_id", publication.ID, "error", result.PartialErr)
  }
  return result, nil
}

func (ps *publicationService) GetByID(ctx context.Context, publicationID uuid.UUID) (*types.Publication, error) {
  publication, err := ps.publicationRepo.GetDetailByID(ctx, nil, publicationID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("publication_not_found", err)
    }
    return nil, fmt.Errorf("get publication: %w", err)
  }
  return publication, nil
}

// Remove deletes the publication together with every vote and tag link that
// references it inside one transaction; any failure leaves all three sets
// untouched.
func (ps *publicationService) Remove(ctx context.Context, publicationID uuid.UUID) (*types.Publication, error) {
  var removed *types.Publication
  err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    publication, err := ps.publicationRepo.GetWithRefsByID(ctx, tx, publicationID)
    if err != nil {
      if errors.Is(err, gorm.ErrRecordNotFound) {
        return apierr.NotFound("publication_not_found", err)
      }
      return fmt.Errorf("load publication: %w", err)
    }

    voteIDs := make([]uuid.UUID, 0, len(publication.Votes))
    for _, vote := range publication.Votes {
      voteIDs = append(voteIDs, vote.ID)
    }
    tagLinkIDs := make([]uuid.UUID, 0, len(publication.Tags))
    for _, link := range publication.Tags {
      tagLinkIDs = append(tagLinkIDs, link.ID)
    }

    if err := ps.voteRepo.FullDeleteByIDs(ctx, tx, voteIDs); err != nil {
      return fmt.Errorf("delete votes: %w", err)
    }
    if err := ps.publicationTagRepo.FullDeleteByIDs(ctx, tx, tagLinkIDs); err != nil {
      return fmt.Errorf("delete tag links: %w", err)
    }
    if err := ps.publicationRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{publicationID}); err != nil {
      return fmt.Errorf("delete publication: %w", err)
    }

    removed = publication
    return nil
  })
  if err != nil {
    return nil, err
  }
  return removed, nil
}
