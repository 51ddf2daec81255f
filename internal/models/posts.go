package models

import (
	"database/sql"
	"strings"
	"time"
)

// TagSeparator joins tags into the single tags column. A tag that itself
// contains a comma comes back as several tags.
const TagSeparator = ","

type Post struct {
	ID        string         `db:"id" json:"id"`
	Title     string         `db:"title" json:"title"`
	Tags      sql.NullString `db:"tags" json:"-"`
	Content   string         `db:"content" json:"content"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// TagList splits the stored tags column back into a list.
func (p Post) TagList() []string {
	return SplitTags(p.Tags)
}

// PostInput is the data needed to create a post.
type PostInput struct {
	Title   string
	Tags    []string
	Content string
}

// JoinTags stores a nil list as NULL and an empty one as "".
func JoinTags(tags []string) sql.NullString {
	if tags == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.Join(tags, TagSeparator), Valid: true}
}

func SplitTags(s sql.NullString) []string {
	if !s.Valid || s.String == "" {
		return nil
	}
	return strings.Split(s.String, TagSeparator)
}
