package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/requestdata"
  "github.com/yungbote/pubshare-backend/internal/services"
)

type UserHandler struct {
  log         *logger.Logger
  userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
  return &UserHandler{
    log:         log.With("handler", "UserHandler"),
    userService: userService,
  }
}

func parseUserID(c *gin.Context) (uuid.UUID, bool) {
  userID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return uuid.Nil, false
  }
  return userID, true
}

func (h *UserHandler) GetByID(c *gin.Context) {
  userID, ok := parseUserID(c)
  if !ok {
    return
  }
  user, err := h.userService.GetByID(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, "get_user_failed", err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

// ListAll is admin only.
func (h *UserHandler) ListAll(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
    return
  }
  if !rd.IsAdmin() {
    RespondError(c, http.StatusForbidden, "forbidden", nil)
    return
  }
  users, err := h.userService.ListAll(c.Request.Context())
  if err != nil {
    h.log.Error("ListAll failed", "error", err)
    RespondServiceError(c, "list_users_failed", err)
    return
  }
  RespondOK(c, gin.H{"users": users})
}

func (h *UserHandler) UpdateByID(c *gin.Context) {
  userID, ok := parseUserID(c)
  if !ok {
    return
  }
  var req struct {
    FirstName *string `json:"first_name"`
    LastName  *string `json:"last_name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  user, err := h.userService.UpdateByID(c.Request.Context(), userID, services.UserUpdateInput{
    FirstName: req.FirstName,
    LastName:  req.LastName,
  })
  if err != nil {
    h.log.Error("UpdateByID failed", "error", err, "user_id", userID)
    RespondServiceError(c, "update_user_failed", err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (h *UserHandler) ListVotes(c *gin.Context) {
  userID, ok := parseUserID(c)
  if !ok {
    return
  }
  votes, err := h.userService.ListVotes(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, "list_votes_failed", err)
    return
  }
  RespondOK(c, gin.H{"votes": votes})
}

func (h *UserHandler) ListPublications(c *gin.Context) {
  userID, ok := parseUserID(c)
  if !ok {
    return
  }
  publications, err := h.userService.ListPublications(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, "list_publications_failed", err)
    return
  }
  RespondOK(c, gin.H{"publications": publications})
}

func (h *UserHandler) ListInterests(c *gin.Context) {
  userID, ok := parseUserID(c)
  if !ok {
    return
  }
  interests, err := h.userService.ListInterests(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, "list_interests_failed", err)
    return
  }
  RespondOK(c, gin.H{"interests": interests})
}

func (h *UserHandler) AddInterest(c *gin.Context) {
  userID, ok := parseUserID(c)
  if !ok {
    return
  }
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
    return
  }
  var req struct {
    TagID uuid.UUID `json:"tag_id" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  interest, err := h.userService.AddInterest(c.Request.Context(), userID, req.TagID)
  if err != nil {
    RespondServiceError(c, "add_interest_failed", err)
    return
  }
  RespondCreated(c, gin.H{"interest": interest})
}

func (h *UserHandler) RemoveInterest(c *gin.Context) {
  userID, ok := parseUserID(c)
  if !ok {
    return
  }
  var req struct {
    TagID uuid.UUID `json:"tag_id" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  if err := h.userService.RemoveInterest(c.Request.Context(), userID, req.TagID); err != nil {
    RespondServiceError(c, "remove_interest_failed", err)
    return
  }
  RespondOK(c, gin.H{"success": "true"})
}
