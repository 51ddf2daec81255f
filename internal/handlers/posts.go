package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vaughan-dsouza/BeGoForms/internal/db"
	"github.com/vaughan-dsouza/BeGoForms/internal/forms"
	"github.com/vaughan-dsouza/BeGoForms/internal/utils"
	"github.com/vaughan-dsouza/BeGoForms/internal/validation"
	"github.com/vaughan-dsouza/BeGoForms/internal/views"
)

// PostHandler serves the server-rendered post pages.
type PostHandler struct {
	Store     PostStore
	Validator validation.Validator
	Views     *views.Renderer
	Log       *zap.Logger
}

func NewPostHandler(store PostStore, v validation.Validator, r *views.Renderer, logger *zap.Logger) *PostHandler {
	return &PostHandler{Store: store, Validator: v, Views: r, Log: logger}
}

// ---------------------- LIST ----------------------

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Store.FindMany(r.Context(), db.ListSelection)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.render(w, http.StatusOK, views.PagePostList, views.PostListData{Posts: posts})
}

// ---------------------- NEW ----------------------

func (h *PostHandler) NewPost(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, views.PageNewPost, views.NewPostPage(forms.Empty()))
}

// ---------------------- CREATE ----------------------

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := utils.ParseForm(w, r); err != nil {
		h.badRequest(w, err)
		return
	}

	req, err := forms.Parse(r.PostForm)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	state, persist := forms.Apply(req, h.Validator)
	if !persist {
		status := http.StatusOK
		if state.Status == forms.StatusError {
			status = http.StatusUnprocessableEntity
		}
		h.render(w, status, views.PageNewPost, views.NewPostPage(state))
		return
	}

	post, err := h.Store.Create(r.Context(), req.Submission.Input())
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.Log.Info("post created", zap.String("id", post.ID), zap.String("title", post.Title))
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// ---------------------- HELPERS ----------------------

func (h *PostHandler) render(w http.ResponseWriter, status int, page string, data any) {
	if err := h.Views.Render(w, status, page, data); err != nil {
		h.serverError(w, err)
	}
}

func (h *PostHandler) serverError(w http.ResponseWriter, err error) {
	h.Log.Error("request failed", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// badRequest answers a submission no form of ours produces. The detail is
// logged, not shown.
func (h *PostHandler) badRequest(w http.ResponseWriter, err error) {
	if errors.Is(err, forms.ErrMalformed) {
		h.Log.Error("malformed post submission", zap.Error(err))
	} else {
		h.Log.Warn("unreadable post submission", zap.Error(err))
	}
	http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
}
