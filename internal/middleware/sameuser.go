package middleware

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/requestdata"
)

type SameUserMiddleware struct {
  log *logger.Logger
}

func NewSameUserMiddleware(log *logger.Logger) *SameUserMiddleware {
  middlewareLogger := log.With("middleware", "SameUserMiddleware")
  return &SameUserMiddleware{log: middlewareLogger}
}

// VerifySameUser annotates the request with an AccessDecision built from the
// authenticated identity and the :id route parameter. It is advisory only:
// whatever the decision says, the chain continues. Enforcement belongs to
// RequireSameUserOrAdmin or to the handler consuming the decision.
func (sm *SameUserMiddleware) VerifySameUser() gin.HandlerFunc {
  return func(c *gin.Context) {
    rd := requestdata.GetRequestData(c.Request.Context())
    if rd == nil {
      // The role check cannot run without an identity; this is the one
      // failure that propagates instead of annotating.
      c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "request identity missing"})
      return
    }
    targetID := c.Param("id")

    decision := requestdata.AccessDecision{
      IsURLPublic: true,
      IsSameUser:  rd.UserID.String() == targetID,
      IsAdmin:     rd.IsAdmin(),
    }

    sm.log.Debug("Access decision computed",
      "user_id", rd.UserID,
      "target_id", targetID,
      "is_same_user", decision.IsSameUser,
      "is_admin", decision.IsAdmin)

    ctx := requestdata.WithAccessDecision(c.Request.Context(), decision)
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}

// RequireSameUserOrAdmin is the enforcement stage for routes that mutate a
// user-scoped resource. It reads the decision VerifySameUser left in the
// context and forbids the request unless the caller owns the resource or
// holds the admin role.
func (sm *SameUserMiddleware) RequireSameUserOrAdmin() gin.HandlerFunc {
  return func(c *gin.Context) {
    decision, ok := requestdata.GetAccessDecision(c.Request.Context())
    if !ok {
      c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access decision missing"})
      return
    }
    if !decision.IsSameUser && !decision.IsAdmin {
      c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
      return
    }
    c.Next()
  }
}
