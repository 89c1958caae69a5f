package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/pubshare-backend/internal/repos/testutil"
)

func TestPublicationRepo_FindAndCountPublic_NameFilterIsCaseInsensitive(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPublicationRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "list-name@example.com")
	testutil.SeedPublication(t, ctx, tx, user.ID, "Gravitational Waves")
	testutil.SeedPublication(t, ctx, tx, user.ID, "Marine Biology")

	total, rows, err := repo.FindAndCountPublic(ctx, tx, PublicationListFilter{Name: "gRaViTaTiOnAl"})
	if err != nil {
		t.Fatalf("FindAndCountPublic: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected total 1, got %d", total)
	}
	if len(rows) != 1 || rows[0].Name != "Gravitational Waves" {
		t.Fatalf("expected the matching publication, got %+v", rows)
	}
}

func TestPublicationRepo_FindAndCountPublic_IDFilterIsExact(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPublicationRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "list-id@example.com")
	target := testutil.SeedPublication(t, ctx, tx, user.ID, "Target")
	testutil.SeedPublication(t, ctx, tx, user.ID, "Other")

	total, rows, err := repo.FindAndCountPublic(ctx, tx, PublicationListFilter{ID: &target.ID})
	if err != nil {
		t.Fatalf("FindAndCountPublic: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("expected exactly one row, got total=%d rows=%d", total, len(rows))
	}
	if rows[0].ID != target.ID {
		t.Fatalf("expected %s, got %s", target.ID, rows[0].ID)
	}
}

func TestPublicationRepo_FindAndCountPublic_CountStaysDistinctWithManyTags(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPublicationRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "list-distinct@example.com")
	pub := testutil.SeedPublication(t, ctx, tx, user.ID, "Tagged Twice")
	tagA := testutil.SeedTag(t, ctx, tx, "distinct-a")
	tagB := testutil.SeedTag(t, ctx, tx, "distinct-b")
	testutil.SeedPublicationTag(t, ctx, tx, pub.ID, tagA.ID)
	testutil.SeedPublicationTag(t, ctx, tx, pub.ID, tagB.ID)

	total, rows, err := repo.FindAndCountPublic(ctx, tx, PublicationListFilter{ID: &pub.ID})
	if err != nil {
		t.Fatalf("FindAndCountPublic: %v", err)
	}
	if total != 1 {
		t.Fatalf("two tag links must not inflate the count: got %d", total)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if len(rows[0].Tags) != 2 {
		t.Fatalf("expected both tag links preloaded, got %d", len(rows[0].Tags))
	}
	for _, link := range rows[0].Tags {
		if link.Tag == nil || link.Tag.Name == "" {
			t.Fatalf("expected nested tag to be preloaded, got %+v", link)
		}
	}
}

func TestPublicationRepo_FindAndCountPublic_VotesCountAndProjection(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPublicationRepo(tx, testutil.Logger(t))

	author := testutil.SeedUser(t, ctx, tx, "list-votes-a@example.com")
	voter := testutil.SeedUser(t, ctx, tx, "list-votes-b@example.com")
	voted := testutil.SeedPublication(t, ctx, tx, author.ID, "Voted")
	unvoted := testutil.SeedPublication(t, ctx, tx, author.ID, "Unvoted")
	if err := tx.Model(voted).Update("content", "full text").Error; err != nil {
		t.Fatalf("set content: %v", err)
	}
	testutil.SeedVote(t, ctx, tx, voted.ID, author.ID)
	testutil.SeedVote(t, ctx, tx, voted.ID, voter.ID)

	_, rows, err := repo.FindAndCountPublic(ctx, tx, PublicationListFilter{})
	if err != nil {
		t.Fatalf("FindAndCountPublic: %v", err)
	}

	counts := map[uuid.UUID]int{}
	for _, row := range rows {
		counts[row.ID] = row.VotesCount
		if row.Content != "" {
			t.Fatalf("list projection must not expose content, got %q", row.Content)
		}
	}
	if counts[voted.ID] != 2 {
		t.Fatalf("expected votes_count 2, got %d", counts[voted.ID])
	}
	if counts[unvoted.ID] != 0 {
		t.Fatalf("expected votes_count 0, got %d", counts[unvoted.ID])
	}
}

func TestPublicationRepo_FindAndCountPublic_PaginationNeedsBothBounds(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPublicationRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "list-page@example.com")
	for _, name := range []string{"page-one", "page-two", "page-three"} {
		testutil.SeedPublication(t, ctx, tx, user.ID, name)
	}

	limit, offset := 2, 0
	total, rows, err := repo.FindAndCountPublic(ctx, tx, PublicationListFilter{Name: "page-", Limit: &limit, Offset: &offset})
	if err != nil {
		t.Fatalf("FindAndCountPublic paged: %v", err)
	}
	if total != 3 {
		t.Fatalf("total must count the full match set, got %d", total)
	}
	if len(rows) != 2 {
		t.Fatalf("expected a page of 2, got %d", len(rows))
	}

	// Limit without offset is ignored: the page is unbounded.
	total, rows, err = repo.FindAndCountPublic(ctx, tx, PublicationListFilter{Name: "page-", Limit: &limit})
	if err != nil {
		t.Fatalf("FindAndCountPublic unpaged: %v", err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("expected all 3 rows without offset, got total=%d rows=%d", total, len(rows))
	}
}

func TestPublicationRepo_GetDetailByID_ExposesContentAndVotesCount(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPublicationRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "detail@example.com")
	location := testutil.SeedLocation(t, ctx, tx, "Ushuaia")
	pubType := testutil.SeedPublicationType(t, ctx, tx, "detail-article")
	pub := testutil.SeedPublication(t, ctx, tx, user.ID, "Detail")
	if err := tx.Model(pub).Updates(map[string]interface{}{
		"content":             "the body",
		"location_id":         location.ID,
		"publication_type_id": pubType.ID,
	}).Error; err != nil {
		t.Fatalf("update publication: %v", err)
	}
	testutil.SeedVote(t, ctx, tx, pub.ID, user.ID)

	got, err := repo.GetDetailByID(ctx, tx, pub.ID)
	if err != nil {
		t.Fatalf("GetDetailByID: %v", err)
	}
	if got.Content != "the body" {
		t.Fatalf("detail view must expose content, got %q", got.Content)
	}
	if got.VotesCount != 1 {
		t.Fatalf("expected votes_count 1, got %d", got.VotesCount)
	}
	if got.Location == nil || got.Location.Name != "Ushuaia" {
		t.Fatalf("expected location preloaded, got %+v", got.Location)
	}
	if got.PublicationType == nil || got.PublicationType.Name != "detail-article" {
		t.Fatalf("expected publication type preloaded, got %+v", got.PublicationType)
	}
	if len(got.Votes) != 1 {
		t.Fatalf("expected votes preloaded, got %d", len(got.Votes))
	}
}

func TestPublicationRepo_GetWithRefsByID_LoadsVotesAndTagLinks(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPublicationRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "refs@example.com")
	pub := testutil.SeedPublication(t, ctx, tx, user.ID, "Refs")
	tag := testutil.SeedTag(t, ctx, tx, "refs-tag")
	testutil.SeedPublicationTag(t, ctx, tx, pub.ID, tag.ID)
	testutil.SeedVote(t, ctx, tx, pub.ID, user.ID)

	got, err := repo.GetWithRefsByID(ctx, tx, pub.ID)
	if err != nil {
		t.Fatalf("GetWithRefsByID: %v", err)
	}
	if len(got.Votes) != 1 || len(got.Tags) != 1 {
		t.Fatalf("expected 1 vote and 1 tag link, got %d and %d", len(got.Votes), len(got.Tags))
	}
}

func TestPublicationRepo_FullDeleteByIDs_EmptyIsNoop(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPublicationRepo(tx, testutil.Logger(t))

	if err := repo.FullDeleteByIDs(ctx, tx, nil); err != nil {
		t.Fatalf("empty delete must be a no-op, got %v", err)
	}
}
