package handlers

import (
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/datatypes"

  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/repos"
  "github.com/yungbote/pubshare-backend/internal/requestdata"
  "github.com/yungbote/pubshare-backend/internal/services"
)

type PublicationHandler struct {
  log                *logger.Logger
  publicationService services.PublicationService
}

func NewPublicationHandler(log *logger.Logger, publicationService services.PublicationService) *PublicationHandler {
  return &PublicationHandler{
    log:                log.With("handler", "PublicationHandler"),
    publicationService: publicationService,
  }
}

func (h *PublicationHandler) List(c *gin.Context) {
  filter := repos.PublicationListFilter{
    Name: c.Query("name"),
  }
  if raw := c.Query("id"); raw != "" {
    id, err := uuid.Parse(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_id", err)
      return
    }
    filter.ID = &id
  }
  // Pagination only applies when both parameters are present.
  if rawLimit, rawOffset := c.Query("limit"), c.Query("offset"); rawLimit != "" && rawOffset != "" {
    limit, limitErr := strconv.Atoi(rawLimit)
    offset, offsetErr := strconv.Atoi(rawOffset)
    if limitErr != nil || offsetErr != nil || limit < 0 || offset < 0 {
      RespondError(c, http.StatusBadRequest, "invalid_pagination", nil)
      return
    }
    filter.Limit = &limit
    filter.Offset = &offset
  }

  total, rows, err := h.publicationService.List(c.Request.Context(), filter)
  if err != nil {
    h.log.Error("List publications failed", "error", err)
    RespondServiceError(c, "list_publications_failed", err)
    return
  }
  RespondOK(c, gin.H{"count": total, "publications": rows})
}

func (h *PublicationHandler) Create(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
    return
  }

  var req struct {
    Name              string         `json:"name" binding:"required"`
    Description       string         `json:"description"`
    Content           string         `json:"content"`
    Metadata          datatypes.JSON `json:"metadata"`
    LocationID        *uuid.UUID     `json:"location_id"`
    PublicationTypeID *uuid.UUID     `json:"publication_type_id"`
    Tags              []uuid.UUID    `json:"tags"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }

  result, err := h.publicationService.Create(c.Request.Context(), rd.UserID, services.PublicationCreateInput{
    Name:              req.Name,
    Description:       req.Description,
    Content:           req.Content,
    Metadata:          req.Metadata,
    LocationID:        req.LocationID,
    PublicationTypeID: req.PublicationTypeID,
    TagIDs:            req.Tags,
  })
  if err != nil {
    h.log.Error("Create publication failed", "error", err, "user_id", rd.UserID)
    RespondServiceError(c, "create_publication_failed", err)
    return
  }

  // The row is durable even when a post-commit submission failed; callers
  // see which pieces landed rather than a blanket error.
  RespondCreated(c, gin.H{
    "publication":   result.Publication,
    "tags_attached": result.TagsAttached,
    "vote_cast":     result.VoteCast,
  })
}

func (h *PublicationHandler) GetByID(c *gin.Context) {
  publicationID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  publication, err := h.publicationService.GetByID(c.Request.Context(), publicationID)
  if err != nil {
    RespondServiceError(c, "get_publication_failed", err)
    return
  }
  RespondOK(c, gin.H{"publication": publication})
}

func (h *PublicationHandler) Delete(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
    return
  }
  publicationID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }

  publication, err := h.publicationService.GetByID(c.Request.Context(), publicationID)
  if err != nil {
    RespondServiceError(c, "get_publication_failed", err)
    return
  }
  // Only the owner or an admin may remove a publication.
  if publication.UserID != rd.UserID && !rd.IsAdmin() {
    RespondError(c, http.StatusForbidden, "forbidden", nil)
    return
  }

  removed, err := h.publicationService.Remove(c.Request.Context(), publicationID)
  if err != nil {
    h.log.Error("Delete publication failed", "error", err, "publication_id", publicationID)
    RespondServiceError(c, "delete_publication_failed", err)
    return
  }
  RespondOK(c, gin.H{"publication": removed})
}
