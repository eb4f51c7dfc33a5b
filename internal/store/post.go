// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"halkapress/internal/models"
)

// ErrDuplicateSlug is returned when an insert or update would give two posts
// in the same language the same slug. The (language, slug) pair is the public
// address of a post, so the constraint lives in the schema and surfaces here
// as a typed error the handlers can message on.
var ErrDuplicateSlug = errors.New("a post with this slug already exists in this language")

// pgUniqueViolation is the SQLSTATE code PostgreSQL reports for
// unique-constraint violations.
const pgUniqueViolation = "23505"

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// Create inserts a new post and returns it with the generated ID and
// creation timestamp. Returns ErrDuplicateSlug if the (language, slug)
// pair is already taken.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	result := &models.Post{}
	err := s.db.QueryRow(`
		INSERT INTO posts (title, slug, content, language, image_url, is_published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, slug, content, language, image_url, is_published, created_at
	`, p.Title, p.Slug, p.Content, p.Language, p.ImageURL, p.IsPublished,
	).Scan(
		&result.ID, &result.Title, &result.Slug, &result.Content,
		&result.Language, &result.ImageURL, &result.IsPublished, &result.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return result, nil
}

// Update overwrites the editable fields of an existing post: title, slug,
// content, language, and image URL. The publication flag and creation
// timestamp are never touched. Returns ErrDuplicateSlug on slug collisions.
func (s *PostStore) Update(p *models.Post) error {
	res, err := s.db.Exec(`
		UPDATE posts SET
			title = $1, slug = $2, content = $3, language = $4, image_url = $5
		WHERE id = $6
	`, p.Title, p.Slug, p.Content, p.Language, p.ImageURL, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("update post: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update post: id %d not found", p.ID)
	}
	return nil
}

// Delete removes a post by ID. Hard delete, no tombstone.
func (s *PostStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// FindByID retrieves a post by its numeric ID. Returns nil if not found.
func (s *PostStore) FindByID(id int64) (*models.Post, error) {
	p := &models.Post{}
	err := s.db.QueryRow(`
		SELECT id, title, slug, content, language, image_url, is_published, created_at
		FROM posts WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content,
		&p.Language, &p.ImageURL, &p.IsPublished, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// FindBySlugAndLanguage retrieves a published post by its public address.
// Used for public detail rendering; unpublished posts are not reachable
// through it. Returns nil if not found.
func (s *PostStore) FindBySlugAndLanguage(slug string, lang models.Language) (*models.Post, error) {
	p := &models.Post{}
	err := s.db.QueryRow(`
		SELECT id, title, slug, content, language, image_url, is_published, created_at
		FROM posts WHERE slug = $1 AND language = $2 AND is_published = TRUE
	`, slug, lang).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content,
		&p.Language, &p.ImageURL, &p.IsPublished, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// ListByLanguage returns posts for one language, newest first. When
// publishedOnly is true only published posts are included — this is the
// public listing query.
func (s *PostStore) ListByLanguage(lang models.Language, publishedOnly bool) ([]models.Post, error) {
	query := `
		SELECT id, title, slug, content, language, image_url, is_published, created_at
		FROM posts
		WHERE language = $1
		ORDER BY created_at DESC
	`
	if publishedOnly {
		query = `
			SELECT id, title, slug, content, language, image_url, is_published, created_at
			FROM posts
			WHERE language = $1 AND is_published = TRUE
			ORDER BY created_at DESC
		`
	}

	rows, err := s.db.Query(query, lang)
	if err != nil {
		return nil, fmt.Errorf("list posts by language: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListAll returns every post in every language, newest first. Used by the
// admin dashboard.
func (s *PostStore) ListAll() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT id, title, slug, content, language, image_url, is_published, created_at
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// Count returns the number of posts across all languages.
func (s *PostStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// scanPosts collects rows into a post slice.
func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content,
			&p.Language, &p.ImageURL, &p.IsPublished, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
