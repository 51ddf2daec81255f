package handlers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vaughan-dsouza/BeGoForms/internal/db"
	"github.com/vaughan-dsouza/BeGoForms/internal/forms"
	"github.com/vaughan-dsouza/BeGoForms/internal/models"
	"github.com/vaughan-dsouza/BeGoForms/internal/utils"
	"github.com/vaughan-dsouza/BeGoForms/internal/validation"
)

// APIHandler serves the same post flow as JSON for a separate client app.
type APIHandler struct {
	Store     PostStore
	Validator validation.Validator
	Log       *zap.Logger
}

func NewAPIHandler(store PostStore, v validation.Validator, logger *zap.Logger) *APIHandler {
	return &APIHandler{Store: store, Validator: v, Log: logger}
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func newPostResponse(p models.Post) postResponse {
	tags := p.TagList()
	if tags == nil {
		tags = []string{}
	}
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Tags:      tags,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}

// ---------------------- LIST ----------------------

func (h *APIHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Store.FindMany(r.Context(), db.ListSelection)
	if err != nil {
		h.Log.Error("list posts", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "could not load posts")
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostResponse(p))
	}

	utils.JSON(w, http.StatusOK, map[string]any{"posts": out})
}

// ---------------------- NEW ----------------------

func (h *APIHandler) NewPost(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, forms.Empty())
}

// ---------------------- CREATE ----------------------

func (h *APIHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	state, persist := forms.Apply(req, h.Validator)
	if !persist {
		status := http.StatusOK
		if state.Status == forms.StatusError {
			status = http.StatusUnprocessableEntity
		}
		utils.JSON(w, status, state)
		return
	}

	post, err := h.Store.Create(r.Context(), req.Submission.Input())
	if err != nil {
		h.Log.Error("create post", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "could not save post")
		return
	}

	h.Log.Info("post created", zap.String("id", post.ID), zap.String("title", post.Title))
	utils.JSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"post":   newPostResponse(post),
	})
}

type createPostReq struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Intent  *string  `json:"intent"`
	Tags    []string `json:"tags"`
}

// decode accepts a JSON body or the same form fields the HTML form posts.
// It writes the error response itself when it returns false.
func (h *APIHandler) decode(w http.ResponseWriter, r *http.Request) (forms.Request, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var (
		req forms.Request
		err error
	)
	if mediaType == "application/json" {
		req, err = decodeJSONRequest(w, r)
	} else {
		if err = utils.ParseForm(w, r); err == nil {
			req, err = forms.Parse(r.PostForm)
		}
	}

	if err != nil {
		if errors.Is(err, forms.ErrMalformed) {
			h.Log.Error("malformed post submission", zap.Error(err))
		} else {
			h.Log.Warn("unreadable post submission", zap.Error(err))
		}
		utils.JSONError(w, http.StatusBadRequest, "malformed submission")
		return forms.Request{}, false
	}
	return req, true
}

func decodeJSONRequest(w http.ResponseWriter, r *http.Request) (forms.Request, error) {
	var body createPostReq
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return forms.Request{}, err
	}
	if body.Title == nil || body.Content == nil || body.Intent == nil {
		return forms.Request{}, fmt.Errorf("%w: missing title, content or intent", forms.ErrMalformed)
	}
	return forms.NewRequest(*body.Title, *body.Content, *body.Intent, body.Tags)
}
