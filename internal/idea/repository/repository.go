package repository

import (
	"context"
	"errors"
	"time"

	"github.com/siteideas/website-ideas/internal/idea"
)

var (
	ErrNotFound = errors.New("website idea not found")
)

// Repository persists idea records. Insert assigns ID, CreatedAt and
// UpdatedAt on rec. FindAll returns records newest first.
type Repository interface {
	Insert(ctx context.Context, rec *idea.IdeaRecord) error
	FindAll(ctx context.Context) ([]idea.IdeaRecord, error)
	FindByID(ctx context.Context, id string) (*idea.IdeaRecord, error)
	Ping(ctx context.Context) error
}

// now returns the current time at the precision MongoDB stores dates with.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
