package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/pubshare-backend/internal/types"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
		Role:      types.RoleBasic,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedAdmin(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := SeedUser(tb, ctx, tx, email)
	if err := tx.WithContext(ctx).Model(u).Update("role", types.RoleAdmin).Error; err != nil {
		tb.Fatalf("seed admin: %v", err)
	}
	u.Role = types.RoleAdmin
	return u
}

func SeedTag(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Tag {
	tb.Helper()
	t := &types.Tag{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	return t
}

func SeedLocation(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Location {
	tb.Helper()
	l := &types.Location{
		ID:      uuid.New(),
		Name:    name,
		Country: "AR",
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed location: %v", err)
	}
	return l
}

func SeedPublicationType(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.PublicationType {
	tb.Helper()
	pt := &types.PublicationType{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(pt).Error; err != nil {
		tb.Fatalf("seed publication type: %v", err)
	}
	return pt
}

func SeedPublication(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string) *types.Publication {
	tb.Helper()
	p := &types.Publication{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed publication: %v", err)
	}
	return p
}

func SeedPublicationTag(tb testing.TB, ctx context.Context, tx *gorm.DB, publicationID, tagID uuid.UUID) *types.PublicationTag {
	tb.Helper()
	pt := &types.PublicationTag{
		ID:            uuid.New(),
		PublicationID: publicationID,
		TagID:         tagID,
	}
	if err := tx.WithContext(ctx).Create(pt).Error; err != nil {
		tb.Fatalf("seed publication tag: %v", err)
	}
	return pt
}

func SeedVote(tb testing.TB, ctx context.Context, tx *gorm.DB, publicationID, userID uuid.UUID) *types.Vote {
	tb.Helper()
	v := &types.Vote{
		ID:            uuid.New(),
		PublicationID: publicationID,
		UserID:        userID,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed vote: %v", err)
	}
	return v
}
