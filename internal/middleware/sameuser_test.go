package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/pubshare-backend/internal/logger"
	"github.com/yungbote/pubshare-backend/internal/requestdata"
	"github.com/yungbote/pubshare-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func injectIdentity(rd *requestdata.RequestData) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestdata.WithRequestData(c.Request.Context(), rd)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func runVerify(t *testing.T, rd *requestdata.RequestData, targetID string) (*httptest.ResponseRecorder, *requestdata.AccessDecision, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	sm := NewSameUserMiddleware(testLogger(t))

	var decision requestdata.AccessDecision
	var reached, found bool
	handlers := []gin.HandlerFunc{}
	if rd != nil {
		handlers = append(handlers, injectIdentity(rd))
	}
	handlers = append(handlers, sm.VerifySameUser(), func(c *gin.Context) {
		reached = true
		decision, found = requestdata.GetAccessDecision(c.Request.Context())
		c.Status(http.StatusOK)
	})
	router.GET("/users/:id", handlers...)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/"+targetID, nil)
	router.ServeHTTP(w, req)
	if !reached {
		return w, nil, false
	}
	if !found {
		t.Fatalf("handler ran without an access decision in context")
	}
	return w, &decision, true
}

func TestVerifySameUser_SameUserAnnotatesAndContinues(t *testing.T) {
	userID := uuid.New()
	rd := &requestdata.RequestData{UserID: userID, Role: types.RoleBasic}

	w, decision, reached := runVerify(t, rd, userID.String())
	if !reached || w.Code != http.StatusOK {
		t.Fatalf("expected the chain to continue, got status %d", w.Code)
	}
	if !decision.IsSameUser || decision.IsAdmin {
		t.Fatalf("expected same-user only, got %+v", decision)
	}
	if !decision.IsURLPublic {
		t.Fatalf("expected IsURLPublic set, got %+v", decision)
	}
}

func TestVerifySameUser_MismatchStillContinues(t *testing.T) {
	rd := &requestdata.RequestData{UserID: uuid.New(), Role: types.RoleBasic}

	w, decision, reached := runVerify(t, rd, uuid.New().String())
	if !reached || w.Code != http.StatusOK {
		t.Fatalf("the annotation stage must not block, got status %d", w.Code)
	}
	if decision.IsSameUser || decision.IsAdmin {
		t.Fatalf("expected neither flag, got %+v", decision)
	}
}

func TestVerifySameUser_AdminOnForeignResource(t *testing.T) {
	rd := &requestdata.RequestData{UserID: uuid.New(), Role: types.RoleAdmin}

	w, decision, reached := runVerify(t, rd, uuid.New().String())
	if !reached || w.Code != http.StatusOK {
		t.Fatalf("expected the chain to continue, got status %d", w.Code)
	}
	if decision.IsSameUser || !decision.IsAdmin {
		t.Fatalf("expected admin only, got %+v", decision)
	}
}

func TestVerifySameUser_AdminOnOwnResourceSetsBothFlags(t *testing.T) {
	userID := uuid.New()
	rd := &requestdata.RequestData{UserID: userID, Role: types.RoleAdmin}

	_, decision, reached := runVerify(t, rd, userID.String())
	if !reached {
		t.Fatalf("expected the chain to continue")
	}
	if !decision.IsSameUser || !decision.IsAdmin {
		t.Fatalf("both flags must hold independently, got %+v", decision)
	}
}

func TestVerifySameUser_MissingIdentityFails(t *testing.T) {
	w, _, reached := runVerify(t, nil, uuid.New().String())
	if reached {
		t.Fatalf("handler must not run without an identity")
	}
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func runRequire(t *testing.T, decision *requestdata.AccessDecision) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	sm := NewSameUserMiddleware(testLogger(t))

	handlers := []gin.HandlerFunc{}
	if decision != nil {
		d := *decision
		handlers = append(handlers, func(c *gin.Context) {
			ctx := requestdata.WithAccessDecision(c.Request.Context(), d)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
	handlers = append(handlers, sm.RequireSameUserOrAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.PUT("/users/:id", handlers...)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequireSameUserOrAdmin_AllowsSameUser(t *testing.T) {
	w := runRequire(t, &requestdata.AccessDecision{IsURLPublic: true, IsSameUser: true})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireSameUserOrAdmin_AllowsAdmin(t *testing.T) {
	w := runRequire(t, &requestdata.AccessDecision{IsURLPublic: true, IsAdmin: true})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireSameUserOrAdmin_ForbidsOthers(t *testing.T) {
	w := runRequire(t, &requestdata.AccessDecision{IsURLPublic: true})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireSameUserOrAdmin_MissingDecisionIsForbidden(t *testing.T) {
	w := runRequire(t, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without a decision, got %d", w.Code)
	}
}
