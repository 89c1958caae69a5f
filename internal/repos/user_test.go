package repos

import (
	"context"
	"testing"

	"github.com/yungbote/pubshare-backend/internal/repos/testutil"
)

func TestUserRepo_EmailExists(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(tx, testutil.Logger(t))

	testutil.SeedUser(t, ctx, tx, "exists@example.com")

	exists, err := repo.EmailExists(ctx, tx, "exists@example.com")
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("expected email to exist")
	}

	exists, err = repo.EmailExists(ctx, tx, "missing@example.com")
	if err != nil {
		t.Fatalf("EmailExists missing: %v", err)
	}
	if exists {
		t.Fatalf("expected email to be missing")
	}
}

func TestUserRepo_UpdateFields(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "update@example.com")

	if err := repo.UpdateFields(ctx, tx, user.ID, map[string]interface{}{"first_name": "Renamed"}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FirstName != "Renamed" {
		t.Fatalf("expected first_name Renamed, got %q", got.FirstName)
	}
}
