// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/models"
)

type bulletinRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBulletinRepository constructs a [BulletinRepository] backed by the "bulletin_posts" table.
func NewBulletinRepository(db *DB, logger *logger.Logger) BulletinRepository {
	logger.Debug().Msg("creating bulletin repository")
	return &bulletinRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts the post and stamps its author as the first viewer.
func (r *bulletinRepository) CreatePost(ctx context.Context, post models.Post) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		_, err := r.db.exec(ctx, tx, r.db.builder.Insert("bulletin_posts").
			Columns("id", "author_id", "author", "title", "content", "category", "is_new", "created_at").
			Values(post.ID, post.AuthorID, post.Author, post.Title, post.Content, post.Category, post.IsNew, post.CreatedAt.UTC()))
		if err != nil {
			return err
		}
		return r.db.insertViews(ctx, tx, models.KindBulletin, post.Interaction)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bulletinRepository.CreatePost").Msg("error creating post")
	}
	return err
}

func (r *bulletinRepository) selectPosts() sq.SelectBuilder {
	return r.db.builder.
		Select("id", "author_id", "author", "created_at", "is_new", "title", "content", "category").
		From("bulletin_posts")
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.AuthorID, &post.Author, &post.CreatedAt, &post.IsNew,
		&post.Title, &post.Content, &post.Category)
	return post, err
}

// GetPost returns [ErrRecordNotFound] when no post has the given ID.
func (r *bulletinRepository) GetPost(ctx context.Context, postID, userID string) (models.Post, error) {
	row, err := r.db.queryRow(ctx, r.db, r.selectPosts().Where(sq.Eq{"id": postID}))
	if err != nil {
		return models.Post{}, err
	}

	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bulletinRepository.GetPost").Msg("error scanning post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	err = r.db.attachInteractions(ctx, models.KindBulletin, userID,
		[]*models.Interaction{&post.Interaction}, []*models.Tally{&post.Tally})
	return post, err
}

func (r *bulletinRepository) ListPosts(ctx context.Context, userID string) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.query(ctx, r.db, r.selectPosts().OrderBy("created_at DESC", "id"))
	if err != nil {
		log.Err(err).Str("func", "*bulletinRepository.ListPosts").Msg("error querying posts")
		return nil, err
	}

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			rows.Close()
			log.Err(err).Str("func", "*bulletinRepository.ListPosts").Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	headers := make([]*models.Interaction, len(posts))
	tallies := make([]*models.Tally, len(posts))
	for i := range posts {
		headers[i] = &posts[i].Interaction
		tallies[i] = &posts[i].Tally
	}
	if err = r.db.attachInteractions(ctx, models.KindBulletin, userID, headers, tallies); err != nil {
		log.Err(err).Str("func", "*bulletinRepository.ListPosts").Msg("error loading interactions")
		return nil, err
	}

	return posts, nil
}
