// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/zivi-portal/internal/interaction"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/mock"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

var listsStart = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func TestCreatePost(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	_, err := env.bulletin.CreatePost(ctx, env.anna, models.NewPost{Title: "Grillabend", Content: "  "})
	assert.ErrorIs(t, err, interaction.ErrValidation)

	_, err = env.bulletin.CreatePost(ctx, env.anna, models.NewPost{Title: "Grillabend", Content: "Freitag", Category: "Party"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	post, err := env.bulletin.CreatePost(ctx, env.anna, models.NewPost{Title: " Grillabend ", Content: "Freitag ab 18 Uhr"})
	require.NoError(t, err)
	assert.Equal(t, "Grillabend", post.Title)
	assert.Equal(t, models.DefaultBulletinCategory, post.Category)
	assert.Equal(t, "Anna Muster", post.Author)
	assert.True(t, post.IsNew)
	assert.Contains(t, post.ViewedBy, env.anna.ID)

	_, err = env.bulletin.CreatePost(ctx, models.User{}, models.NewPost{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestListPosts_NewFirstThenNewest(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	older, err := env.bulletin.CreatePost(ctx, env.anna, models.NewPost{Title: "Alt", Content: "a", Category: "Events"})
	require.NoError(t, err)
	newer, err := env.bulletin.CreatePost(ctx, env.anna, models.NewPost{Title: "Neu", Content: "b", Category: "Transport"})
	require.NoError(t, err)
	byBen, err := env.bulletin.CreatePost(ctx, env.ben, models.NewPost{Title: "Von Ben", Content: "c", Category: "Events"})
	require.NoError(t, err)

	// Anna has seen her own posts; Ben's post is new to her.
	posts, err := env.bulletin.ListPosts(ctx, env.anna, "Alle")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{byBen.ID, newer.ID, older.ID}, postIDs(posts))
	assert.True(t, posts[0].NewForUser)
	assert.False(t, posts[1].NewForUser)

	// Ben views the older post: it stops being new for everyone, so the
	// newest of Anna's posts leads for Ben.
	_, err = env.bulletin.ViewPost(ctx, env.ben, older.ID)
	require.NoError(t, err)

	posts, err = env.bulletin.ListPosts(ctx, env.ben, "")
	require.NoError(t, err)
	assert.Equal(t, []string{newer.ID, byBen.ID, older.ID}, postIDs(posts))

	events, err := env.bulletin.ListPosts(ctx, env.ben, "Events")
	require.NoError(t, err)
	assert.Equal(t, []string{byBen.ID, older.ID}, postIDs(events))
}

func TestViewPost(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	post, err := env.bulletin.CreatePost(ctx, env.anna, models.NewPost{Title: "Fundstück", Content: "Schlüssel"})
	require.NoError(t, err)

	viewed, err := env.bulletin.ViewPost(ctx, env.ben, post.ID)
	require.NoError(t, err)
	assert.False(t, viewed.IsNew)
	assert.False(t, viewed.NewForUser)
	assert.Contains(t, viewed.ViewedBy, env.ben.ID)
	assert.Contains(t, viewed.ViewedBy, env.anna.ID)

	_, err = env.bulletin.ViewPost(ctx, env.ben, "missing")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestVotePost_TriState(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	post, err := env.bulletin.CreatePost(ctx, env.anna, models.NewPost{Title: "Umfrage", Content: "Pizza?"})
	require.NoError(t, err)

	steps := []struct {
		voter     models.User
		direction models.Vote
		up, down  int
		userVote  models.Vote
	}{
		{env.ben, models.VoteUp, 1, 0, models.VoteUp},
		{env.ben, models.VoteDown, 0, 1, models.VoteDown},
		{env.ben, models.VoteDown, 0, 0, models.VoteNone},
		{env.anna, models.VoteUp, 1, 0, models.VoteUp},
		{env.ben, models.VoteUp, 2, 0, models.VoteUp},
	}
	for i, step := range steps {
		voted, err := env.bulletin.VotePost(ctx, step.voter, post.ID, step.direction)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, step.up, voted.Upvotes, "step %d", i)
		assert.Equal(t, step.down, voted.Downvotes, "step %d", i)
		assert.Equal(t, step.userVote, voted.UserVote, "step %d", i)
	}

	// votes are per user
	seen, err := env.bulletin.ViewPost(ctx, env.admin, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VoteNone, seen.UserVote)
	assert.Equal(t, 2, seen.Upvotes)

	_, err = env.bulletin.VotePost(ctx, env.ben, post.ID, "sideways")
	assert.ErrorIs(t, err, interaction.ErrInvalidVote)

	_, err = env.bulletin.VotePost(ctx, env.ben, "missing", models.VoteUp)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestVotePost_CountsAsView(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	post, err := env.bulletin.CreatePost(ctx, env.anna, models.NewPost{Title: "Neu", Content: "x"})
	require.NoError(t, err)

	voted, err := env.bulletin.VotePost(ctx, env.ben, post.ID, models.VoteUp)
	require.NoError(t, err)
	assert.False(t, voted.IsNew)
	assert.Contains(t, voted.ViewedBy, env.ben.ID)
}

func TestVotePost_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockBulletinRepository(ctrl)
	interactions := mock.NewMockInteractionRepository(ctrl)
	svc := NewBulletinService(posts, interactions, validators.NewStructValidator(), &sequentialIDs{prefix: "p"}, logger.Nop())
	dbErr := errors.New("deadlock")

	posts.EXPECT().GetPost(gomock.Any(), "p-1", "anna").Return(models.Post{}, nil)
	interactions.EXPECT().
		CastVote(gomock.Any(), models.KindBulletin, "p-1", "anna", gomock.Any(), gomock.Any()).
		Return(models.VoteNone, models.VoteNone, dbErr)

	_, err := svc.VotePost(context.Background(), models.User{ID: "anna"}, "p-1", models.VoteUp)
	assert.ErrorIs(t, err, dbErr)
}

func TestVotePost_DecidesWithTriState(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockBulletinRepository(ctrl)
	interactions := mock.NewMockInteractionRepository(ctrl)
	svc := NewBulletinService(posts, interactions, validators.NewStructValidator(), &sequentialIDs{prefix: "p"}, logger.Nop())

	posts.EXPECT().GetPost(gomock.Any(), "p-1", "anna").
		Return(models.Post{Tally: models.Tally{Upvotes: 3, Downvotes: 1, UserVote: models.VoteUp}}, nil)
	interactions.EXPECT().
		CastVote(gomock.Any(), models.KindBulletin, "p-1", "anna", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.RecordKind, _, _ string, _ time.Time, decide store.VoteDecider) (models.Vote, models.Vote, error) {
			next, err := decide(models.VoteUp)
			require.NoError(t, err)
			assert.Equal(t, models.VoteDown, next, "down switches an up vote")
			return models.VoteUp, next, nil
		})

	post, err := svc.VotePost(context.Background(), models.User{ID: "anna"}, "p-1", models.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, models.Tally{Upvotes: 2, Downvotes: 2, UserVote: models.VoteDown}, post.Tally,
		"switching moves exactly one vote")
	assert.Contains(t, post.ViewedBy, "anna")
}

func TestVotePost_MissingPostSkipsVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockBulletinRepository(ctrl)
	interactions := mock.NewMockInteractionRepository(ctrl)
	svc := NewBulletinService(posts, interactions, validators.NewStructValidator(), &sequentialIDs{prefix: "p"}, logger.Nop())

	posts.EXPECT().GetPost(gomock.Any(), "gone", "anna").Return(models.Post{}, store.ErrRecordNotFound)

	_, err := svc.VotePost(context.Background(), models.User{ID: "anna"}, "gone", models.VoteUp)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestVotePost_DoubleToggleRestoresTally(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	post, err := env.bulletin.CreatePost(ctx, env.anna, models.NewPost{Title: "Velo", Content: "Wer leiht mir eins?"})
	require.NoError(t, err)
	_, err = env.bulletin.VotePost(ctx, env.anna, post.ID, models.VoteDown)
	require.NoError(t, err)

	before, err := env.bulletin.ViewPost(ctx, env.ben, post.ID)
	require.NoError(t, err)

	for _, direction := range []models.Vote{models.VoteUp, models.VoteDown} {
		_, err = env.bulletin.VotePost(ctx, env.ben, post.ID, direction)
		require.NoError(t, err)
		again, err := env.bulletin.VotePost(ctx, env.ben, post.ID, direction)
		require.NoError(t, err)
		assert.Equal(t, before.Tally, again.Tally, "two %s votes cancel out", direction)
	}

	reloaded, err := env.bulletin.ViewPost(ctx, env.ben, post.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Tally, reloaded.Tally)
}

func postIDs(posts []models.Post) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
