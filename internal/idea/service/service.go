package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/siteideas/website-ideas/internal/idea"
	"github.com/siteideas/website-ideas/internal/idea/generator"
	"github.com/siteideas/website-ideas/internal/idea/repository"
	"github.com/siteideas/website-ideas/pkg/logger"
	"github.com/siteideas/website-ideas/pkg/metrics"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	MsgCreateFailed = "Failed to create website idea"
	MsgListFailed   = "Failed to fetch website ideas"
	MsgGetFailed    = "Failed to fetch website idea"
	MsgNotFound     = "Website idea not found"
)

// Service defines the website idea operations used by the handler layer.
// Every returned error is an *idea.Error.
type Service interface {
	Create(ctx context.Context, ideaText string) (*idea.IdeaRecord, error)
	FindAll(ctx context.Context) ([]idea.IdeaRecord, error)
	FindOne(ctx context.Context, id string) (*idea.IdeaRecord, error)
	Ready(ctx context.Context) error
}

// New returns a Service that generates sections with gen and persists
// records in repo.
func New(repo repository.Repository, gen generator.Generator) Service {
	return &store{repo: repo, gen: gen}
}

// NewMemoryService returns a Service backed by the in-memory repository and
// the default template generator.
func NewMemoryService() Service {
	return New(repository.NewMemoryRepo(), generator.NewTemplateGenerator(nil, nil))
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller is responsible for creating the collection (and client) and passing it in.
func NewMongoService(col *mongo.Collection) Service {
	return New(repository.NewMongoRepo(col), generator.NewTemplateGenerator(nil, nil))
}

type store struct {
	repo repository.Repository
	gen  generator.Generator
}

func (s *store) Create(ctx context.Context, ideaText string) (*idea.IdeaRecord, error) {
	text, err := idea.NormalizeIdea(ideaText)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("create", idea.KindValidation.String()).Inc()
		return nil, err
	}

	sections, err := s.gen.Generate(ctx, text)
	if err == nil {
		err = idea.CheckSections(sections)
	}
	if err != nil {
		return nil, s.fail("create", MsgCreateFailed, fmt.Errorf("generate sections: %w", err))
	}

	rec := &idea.IdeaRecord{Idea: text, Sections: sections}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, s.fail("create", MsgCreateFailed, err)
	}
	metrics.IdeasCreated.Inc()
	logger.Debugf("website idea %s created with %d sections", rec.ID, len(rec.Sections))
	return rec.Clone(), nil
}

func (s *store) FindAll(ctx context.Context) ([]idea.IdeaRecord, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail("find_all", MsgListFailed, err)
	}
	if list == nil {
		list = []idea.IdeaRecord{}
	}
	return list, nil
}

func (s *store) FindOne(ctx context.Context, id string) (*idea.IdeaRecord, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.StoreErrors.WithLabelValues("find_one", idea.KindNotFound.String()).Inc()
			return nil, idea.NewNotFoundError(MsgNotFound)
		}
		return nil, s.fail("find_one", MsgGetFailed, err)
	}
	return rec, nil
}

func (s *store) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// fail logs cause and hides it behind a generic persistence error.
func (s *store) fail(op, msg string, cause error) error {
	logger.Errorf("website idea %s failed: %v", op, cause)
	metrics.StoreErrors.WithLabelValues(op, idea.KindPersistence.String()).Inc()
	return idea.NewPersistenceError(msg, cause)
}
