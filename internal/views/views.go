// Package views renders the HTML pages of the post form.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/vaughan-dsouza/BeGoForms/internal/forms"
	"github.com/vaughan-dsouza/BeGoForms/internal/models"
	"github.com/vaughan-dsouza/BeGoForms/internal/validation"
)

//go:embed templates/*.html
var files embed.FS

const (
	PagePostList = "posts-list.html"
	PageNewPost  = "new-post.html"
)

var functions = template.FuncMap{
	"removeIntent": forms.RemoveIntent,
}

type PostListData struct {
	Posts []models.Post
}

type NewPostData struct {
	State          forms.State
	TitleMaxLength int
}

func NewPostPage(state forms.State) NewPostData {
	return NewPostData{State: state, TitleMaxLength: validation.TitleMaxLength}
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, page := range []string{PagePostList, PageNewPost} {
		ts, err := template.New("").Funcs(functions).ParseFS(files, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", page, err)
		}
		r.pages[page] = ts
	}
	return r, nil
}

// Render executes page into a buffer first so a template error never leaves
// a half-written response behind.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	ts, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("views: unknown page %q", page)
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "layout", data); err != nil {
		return fmt.Errorf("views: render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
