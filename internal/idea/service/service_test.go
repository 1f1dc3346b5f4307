package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/siteideas/website-ideas/internal/idea"
	"github.com/siteideas/website-ideas/internal/idea/generator"
	"github.com/siteideas/website-ideas/internal/idea/repository"
	"github.com/siteideas/website-ideas/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepo wraps a MemoryRepo and fails selected operations.
type failingRepo struct {
	*repository.MemoryRepo
	insertErr error
	listErr   error
	findErr   error
	inserts   int
}

func (f *failingRepo) Insert(ctx context.Context, rec *idea.IdeaRecord) error {
	f.inserts++
	if f.insertErr != nil {
		return f.insertErr
	}
	return f.MemoryRepo.Insert(ctx, rec)
}

func (f *failingRepo) FindAll(ctx context.Context) ([]idea.IdeaRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.MemoryRepo.FindAll(ctx)
}

func (f *failingRepo) FindByID(ctx context.Context, id string) (*idea.IdeaRecord, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.MemoryRepo.FindByID(ctx, id)
}

func seqIDs() generator.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestService() (Service, *failingRepo) {
	repo := &failingRepo{MemoryRepo: repository.NewMemoryRepo()}
	return New(repo, generator.NewTemplateGenerator(nil, seqIDs())), repo
}

func TestCreate_BakeryLandingPage(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.Create(ctx, "Bakery landing page")
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, "Bakery landing page", rec.Idea)
	require.False(t, rec.CreatedAt.IsZero())
	require.Equal(t, rec.CreatedAt, rec.UpdatedAt)
	require.Len(t, rec.Sections, 3)
	for i, want := range []string{"Hero", "About", "Contact"} {
		assert.Equal(t, want, rec.Sections[i].Name)
		assert.Equal(t, i+1, rec.Sections[i].Order)
		assert.Contains(t, rec.Sections[i].Content, "bakery landing page")
	}
	require.NoError(t, idea.CheckSections(rec.Sections))
}

func TestCreate_TrimsIdea(t *testing.T) {
	svc, _ := newTestService()
	rec, err := svc.Create(context.Background(), "   Dog Grooming Salon  ")
	require.NoError(t, err)
	require.Equal(t, "Dog Grooming Salon", rec.Idea)
	require.Contains(t, rec.Sections[0].Content, "our dog grooming salon.")
}

func TestCreate_ValidationRejectsWithoutPersisting(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for _, in := range []string{"Hi", "", "    ", strings.Repeat("a", idea.MaxIdeaLength+1)} {
		_, err := svc.Create(ctx, in)
		require.Error(t, err)
		assert.True(t, idea.IsValidation(err), "input %q", in)
	}
	assert.Equal(t, 0, repo.inserts)

	list, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_IdenticalIdeasProduceDistinctRecords(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	a, err := svc.Create(ctx, "Coffee roastery")
	require.NoError(t, err)
	b, err := svc.Create(ctx, "Coffee roastery")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreate_StorageFailureIsGeneric(t *testing.T) {
	svc, repo := newTestService()
	repo.insertErr = errors.New("mongo: server selection timeout on 10.0.0.3:27017")

	before := testutil.ToFloat64(metrics.StoreErrors.WithLabelValues("create", "persistence"))
	_, err := svc.Create(context.Background(), "Bakery landing page")
	require.Error(t, err)
	assert.True(t, idea.IsPersistence(err))
	assert.Equal(t, MsgCreateFailed, err.Error())
	assert.NotContains(t, err.Error(), "10.0.0.3")
	assert.ErrorIs(t, err, repo.insertErr)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StoreErrors.WithLabelValues("create", "persistence")))
}

func TestCreate_GeneratorFailureIsPersistenceError(t *testing.T) {
	repo := &failingRepo{MemoryRepo: repository.NewMemoryRepo()}
	broken := generator.GeneratorFunc(func(context.Context, string) ([]idea.Section, error) {
		return nil, errors.New("backend unavailable")
	})
	svc := New(repo, broken)

	_, err := svc.Create(context.Background(), "Bakery landing page")
	require.Error(t, err)
	assert.True(t, idea.IsPersistence(err))
	assert.Equal(t, 0, repo.inserts)
}

func TestCreate_GeneratorContractViolationIsRejected(t *testing.T) {
	repo := &failingRepo{MemoryRepo: repository.NewMemoryRepo()}
	dupIDs := generator.GeneratorFunc(func(_ context.Context, text string) ([]idea.Section, error) {
		return []idea.Section{
			{ID: "same", Name: "Hero", Content: text, Order: 1},
			{ID: "same", Name: "About", Content: text, Order: 2},
		}, nil
	})
	svc := New(repo, dupIDs)

	_, err := svc.Create(context.Background(), "Bakery landing page")
	require.Error(t, err)
	assert.True(t, idea.IsPersistence(err))
	assert.Equal(t, 0, repo.inserts)
}

func TestFindAll_NewestFirstAndSnapshotsAreStable(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	list, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	var created []*idea.IdeaRecord
	for i := 0; i < 4; i++ {
		rec, err := svc.Create(ctx, fmt.Sprintf("Idea number %d", i))
		require.NoError(t, err)
		created = append(created, rec)
	}

	list, err = svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i := range list {
		assert.Equal(t, created[len(created)-1-i].ID, list[i].ID)
	}

	snapshot := append([]idea.IdeaRecord(nil), list...)
	_, err = svc.Create(ctx, "One more idea")
	require.NoError(t, err)
	assert.Equal(t, snapshot, list)
	assert.Len(t, list, 4)
}

func TestFindAll_StorageFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.listErr = errors.New("connection reset")
	_, err := svc.FindAll(context.Background())
	require.Error(t, err)
	assert.True(t, idea.IsPersistence(err))
	assert.Equal(t, MsgListFailed, err.Error())
}

func TestFindOne_RoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	rec, err := svc.Create(ctx, "Bakery landing page")
	require.NoError(t, err)

	got, err := svc.FindOne(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestFindOne_NotFoundVsStorageFailure(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.FindOne(ctx, "65f1c0ffee0000000000abcd")
	require.Error(t, err)
	assert.True(t, idea.IsNotFound(err))
	assert.Equal(t, MsgNotFound, err.Error())

	repo.findErr = errors.New("socket closed")
	_, err = svc.FindOne(ctx, "65f1c0ffee0000000000abcd")
	require.Error(t, err)
	assert.True(t, idea.IsPersistence(err))
	assert.False(t, idea.IsNotFound(err))
	assert.Equal(t, MsgGetFailed, err.Error())
}

func TestCreate_ReturnedRecordIsACopy(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	rec, err := svc.Create(ctx, "Bakery landing page")
	require.NoError(t, err)

	rec.Sections[0].Content = "tampered"
	got, err := svc.FindOne(ctx, rec.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", got.Sections[0].Content)
}
