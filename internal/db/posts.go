package db

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/BeGoForms/internal/models"
)

var ErrUnknownColumn = errors.New("db: unknown column")

var postColumns = []string{"id", "title", "tags", "content", "created_at", "updated_at"}

// Selection names the posts columns a query returns. Empty means all of them.
type Selection []string

// ListSelection is what the post list shows.
var ListSelection = Selection{"id", "title", "tags", "content", "created_at"}

func (s Selection) columns() (string, error) {
	if len(s) == 0 {
		return strings.Join(postColumns, ", "), nil
	}
	for _, c := range s {
		if !slices.Contains(postColumns, c) {
			return "", fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
	}
	return strings.Join(s, ", "), nil
}

// Posts is the persistence client for the posts table.
type Posts struct {
	DB *sqlx.DB
}

func NewPosts(db *sqlx.DB) *Posts {
	return &Posts{DB: db}
}

// ---------------------- LIST ----------------------

func (p *Posts) FindMany(ctx context.Context, sel Selection) ([]models.Post, error) {
	cols, err := sel.columns()
	if err != nil {
		return nil, err
	}

	posts := []models.Post{}
	query := `SELECT ` + cols + ` FROM posts ORDER BY created_at DESC`
	if err := p.DB.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("db: find posts: %w", err)
	}
	return posts, nil
}

// ---------------------- CREATE ----------------------

func (p *Posts) Create(ctx context.Context, in models.PostInput) (models.Post, error) {
	now := time.Now().UTC()

	post := models.Post{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Tags:      models.JoinTags(in.Tags),
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := p.DB.NamedExecContext(ctx, `
        INSERT INTO posts (id, title, tags, content, created_at, updated_at)
        VALUES (:id, :title, :tags, :content, :created_at, :updated_at)
    `, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("db: create post: %w", err)
	}

	return post, nil
}
