package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/vaughan-dsouza/BeGoForms/internal/db"
	"github.com/vaughan-dsouza/BeGoForms/internal/models"
	"github.com/vaughan-dsouza/BeGoForms/internal/validation"
	"github.com/vaughan-dsouza/BeGoForms/internal/views"
)

// PostStore is the persistence the post handlers need. *db.Posts satisfies it.
type PostStore interface {
	FindMany(ctx context.Context, sel db.Selection) ([]models.Post, error)
	Create(ctx context.Context, in models.PostInput) (models.Post, error)
}

type Handler struct {
	Posts *PostHandler
	API   *APIHandler
}

func NewHandler(store PostStore, v validation.Validator, r *views.Renderer, logger *zap.Logger) *Handler {
	return &Handler{
		Posts: NewPostHandler(store, v, r, logger),
		API:   NewAPIHandler(store, v, logger),
	}
}
