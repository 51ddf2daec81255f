package db

import (
	"context"

	"github.com/vaughan-dsouza/BeGoForms/internal/models"
)

var samplePosts = []models.PostInput{
	{Title: "Post 1", Tags: []string{"tag 1", "tag 2", "tag 3"}, Content: "Lorem ipsum"},
	{Title: "Post 2", Tags: []string{"tag 1"}, Content: "Lorem ipsum"},
}

// Seed inserts the sample posts. It is not idempotent.
func Seed(ctx context.Context, posts *Posts) (int, error) {
	for i, in := range samplePosts {
		if _, err := posts.Create(ctx, in); err != nil {
			return i, err
		}
	}
	return len(samplePosts), nil
}
