package services

import (
  "context"
  "fmt"

  "gorm.io/gorm"

  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/repos"
  "github.com/yungbote/pubshare-backend/internal/types"
)

type PublicationTagService interface {
  CreateWithBulk(ctx context.Context, tx *gorm.DB, records []*types.PublicationTag) ([]*types.PublicationTag, error)
}

type publicationTagService struct {
  log                *logger.Logger
  publicationTagRepo repos.PublicationTagRepo
}

func NewPublicationTagService(baseLog *logger.Logger, publicationTagRepo repos.PublicationTagRepo) PublicationTagService {
  serviceLog := baseLog.With("service", "PublicationTagService")
  return &publicationTagService{
    log:                serviceLog,
    publicationTagRepo: publicationTagRepo,
  }
}

func (pts *publicationTagService) CreateWithBulk(ctx context.Context, tx *gorm.DB, records []*types.PublicationTag) ([]*types.PublicationTag, error) {
  if len(records) == 0 {
    return []*types.PublicationTag{}, nil
  }
  created, err := pts.publicationTagRepo.Create(ctx, tx, records)
  if err != nil {
    return nil, fmt.Errorf("bulk create publication tags: %w", err)
  }
  pts.log.Debug("Bulk created publication tags", "count", len(created))
  return created, nil
}
