package requestdata

import (
  "context"
  "github.com/google/uuid"
)

const RoleAdmin = "admin"

var requestDataKey = struct{}{}
var accessDecisionKey = struct{ name string }{"access_decision"}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
  return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
  val := ctx.Value(requestDataKey)
  if rd, ok := val.(*RequestData); ok {
    return rd
  }
  return nil
}

type RequestData struct {
  TokenString       string
  RefreshToken      string
  UserID            uuid.UUID
  Role              string
}

func (rd *RequestData) IsAdmin() bool {
  return rd != nil && rd.Role == RoleAdmin
}

// AccessDecision is the advisory annotation computed against one target
// resource id. It never blocks a request on its own; enforcement happens in
// a later stage that reads it from the context.
type AccessDecision struct {
  IsURLPublic       bool
  IsSameUser        bool
  IsAdmin           bool
}

func WithAccessDecision(ctx context.Context, decision AccessDecision) context.Context {
  return context.WithValue(ctx, accessDecisionKey, decision)
}

func GetAccessDecision(ctx context.Context) (AccessDecision, bool) {
  decision, ok := ctx.Value(accessDecisionKey).(AccessDecision)
  return decision, ok
}
