package handlers

import (
  "strings"

  "github.com/gin-gonic/gin"

  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/services"
)

type TagHandler struct {
  log        *logger.Logger
  tagService services.TagService
}

func NewTagHandler(log *logger.Logger, tagService services.TagService) *TagHandler {
  return &TagHandler{
    log:        log.With("handler", "TagHandler"),
    tagService: tagService,
  }
}

// List returns every tag, or only those matching ?names=a,b.
func (h *TagHandler) List(c *gin.Context) {
  var names []string
  if raw := c.Query("names"); raw != "" {
    for _, name := range strings.Split(raw, ",") {
      if name = strings.TrimSpace(name); name != "" {
        names = append(names, name)
      }
    }
  }
  tags, err := h.tagService.List(c.Request.Context(), names)
  if err != nil {
    h.log.Error("List tags failed", "error", err)
    RespondServiceError(c, "list_tags_failed", err)
    return
  }
  RespondOK(c, gin.H{"tags": tags})
}
