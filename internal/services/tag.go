package services

import (
  "context"
  "fmt"

  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/normalization"
  "github.com/yungbote/pubshare-backend/internal/repos"
  "github.com/yungbote/pubshare-backend/internal/types"
)

type TagService interface {
  List(ctx context.Context, names []string) ([]*types.Tag, error)
}

type tagService struct {
  log     *logger.Logger
  tagRepo repos.TagRepo
}

func NewTagService(baseLog *logger.Logger, tagRepo repos.TagRepo) TagService {
  serviceLog := baseLog.With("service", "TagService")
  return &tagService{
    log:     serviceLog,
    tagRepo: tagRepo,
  }
}

// List returns every tag, or only the named ones when names are given. Tag
// names are stored normalized, so the lookup normalizes its input the same
// way.
func (ts *tagService) List(ctx context.Context, names []string) ([]*types.Tag, error) {
  if len(names) == 0 {
    tags, err := ts.tagRepo.GetAll(ctx, nil)
    if err != nil {
      return nil, fmt.Errorf("list tags: %w", err)
    }
    return tags, nil
  }

  normalized := make([]string, 0, len(names))
  for _, name := range names {
    normalized = append(normalized, normalization.ParseInputString(name))
  }
  tags, err := ts.tagRepo.GetByNames(ctx, nil, normalized)
  if err != nil {
    return nil, fmt.Errorf("list tags by name: %w", err)
  }
  return tags, nil
}
