package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/pubshare-backend/internal/apierr"
)

type APIError struct {
  Message string `json:"message"`
  Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

// RespondServiceError maps apierr kinds onto their HTTP status; anything
// unrecognized surfaces as a 500.
func RespondServiceError(c *gin.Context, fallbackCode string, err error) {
  code := fallbackCode
  if apiErr, ok := apierr.As(err); ok && apiErr.Code != "" {
    code = apiErr.Code
  }
  RespondError(c, apierr.StatusOf(err), code, err)
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
  c.JSON(http.StatusCreated, payload)
}
