package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/pubshare-backend/internal/repos/testutil"
	"github.com/yungbote/pubshare-backend/internal/types"
)

func TestVoteRepo_Create_SecondVoteBySameUserIsDuplicate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewVoteRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "vote-dup@example.com")
	pub := testutil.SeedPublication(t, ctx, tx, user.ID, "Dup")

	first := &types.Vote{ID: uuid.New(), PublicationID: pub.ID, UserID: user.ID}
	if _, err := repo.Create(ctx, tx, []*types.Vote{first}); err != nil {
		t.Fatalf("first vote: %v", err)
	}

	second := &types.Vote{ID: uuid.New(), PublicationID: pub.ID, UserID: user.ID}
	_, err := repo.Create(ctx, tx, []*types.Vote{second})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}
}

func TestVoteRepo_CountByPublicationID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewVoteRepo(tx, testutil.Logger(t))

	a := testutil.SeedUser(t, ctx, tx, "vote-count-a@example.com")
	b := testutil.SeedUser(t, ctx, tx, "vote-count-b@example.com")
	pub := testutil.SeedPublication(t, ctx, tx, a.ID, "Counted")
	testutil.SeedVote(t, ctx, tx, pub.ID, a.ID)
	testutil.SeedVote(t, ctx, tx, pub.ID, b.ID)

	count, err := repo.CountByPublicationID(ctx, tx, pub.ID)
	if err != nil {
		t.Fatalf("CountByPublicationID: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 votes, got %d", count)
	}

	count, err = repo.CountByPublicationID(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("CountByPublicationID unknown: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 votes for unknown publication, got %d", count)
	}
}

func TestVoteRepo_FullDeleteByPublicationIDs(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewVoteRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "vote-del@example.com")
	keep := testutil.SeedPublication(t, ctx, tx, user.ID, "Keep")
	drop := testutil.SeedPublication(t, ctx, tx, user.ID, "Drop")
	testutil.SeedVote(t, ctx, tx, keep.ID, user.ID)
	testutil.SeedVote(t, ctx, tx, drop.ID, user.ID)

	if err := repo.FullDeleteByPublicationIDs(ctx, tx, []uuid.UUID{drop.ID}); err != nil {
		t.Fatalf("FullDeleteByPublicationIDs: %v", err)
	}

	remaining, err := repo.GetByPublicationIDs(ctx, tx, []uuid.UUID{keep.ID, drop.ID})
	if err != nil {
		t.Fatalf("GetByPublicationIDs: %v", err)
	}
	if len(remaining) != 1 || remaining[0].PublicationID != keep.ID {
		t.Fatalf("expected only the kept publication's vote, got %+v", remaining)
	}
}
