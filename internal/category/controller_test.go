package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"marketadmin/internal/domain"
	apperrors "marketadmin/internal/errors"
	"marketadmin/internal/notify"
	"marketadmin/internal/view"
)

type mockAPI struct {
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)
	CreateCategoryFunc func(ctx context.Context, draft domain.CategoryDraft) (domain.Category, error)
	UpdateCategoryFunc func(ctx context.Context, id string, draft domain.CategoryDraft) (domain.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id string) error
}

func (m *mockAPI) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.ListCategoriesFunc(ctx)
}

func (m *mockAPI) CreateCategory(ctx context.Context, draft domain.CategoryDraft) (domain.Category, error) {
	return m.CreateCategoryFunc(ctx, draft)
}

func (m *mockAPI) UpdateCategory(ctx context.Context, id string, draft domain.CategoryDraft) (domain.Category, error) {
	return m.UpdateCategoryFunc(ctx, id, draft)
}

func (m *mockAPI) DeleteCategory(ctx context.Context, id string) error {
	return m.DeleteCategoryFunc(ctx, id)
}

func TestLoad_ReplacesStore(t *testing.T) {
	api := &mockAPI{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{{ID: "c1", Name: "Dairy"}, {ID: "c2", Name: "Bakery"}}, nil
		},
	}
	st := NewStore()
	st.Append(domain.Category{ID: "stale", Name: "Old"})
	c := NewController(api, st, notify.NewRecorder(), zap.NewNop())

	err := c.Load(context.Background())

	assert.NoError(t, err)
	assert.Len(t, c.Categories(), 2)
}

func TestLoad_FailureKeepsStore(t *testing.T) {
	api := &mockAPI{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return nil, errors.New("network down")
		},
	}
	rec := notify.NewRecorder()
	st := NewStore()
	st.Append(domain.Category{ID: "c1", Name: "Dairy"})
	c := NewController(api, st, rec, zap.NewNop())

	err := c.Load(context.Background())

	assert.Error(t, err)
	assert.Len(t, c.Categories(), 1)
	assert.Len(t, rec.ByLevel(notify.LevelError), 1)
}

func TestCreate_AppendsServerCopy(t *testing.T) {
	api := &mockAPI{
		CreateCategoryFunc: func(ctx context.Context, draft domain.CategoryDraft) (domain.Category, error) {
			return domain.Category{ID: "c9", Name: draft.Name, Image: draft.Image}, nil
		},
	}
	rec := notify.NewRecorder()
	st := NewStore()
	c := NewController(api, st, rec, zap.NewNop())

	created, err := c.Create(context.Background(), domain.CategoryDraft{Name: "Frozen", Image: "https://img/frozen.png"})

	assert.NoError(t, err)
	assert.Equal(t, "c9", created.ID)
	assert.Equal(t, 1, st.Len())
	assert.Len(t, rec.ByLevel(notify.LevelSuccess), 1)
}

func TestCreate_StoreGrowthPerOutcome(t *testing.T) {
	fail := false
	api := &mockAPI{
		CreateCategoryFunc: func(ctx context.Context, draft domain.CategoryDraft) (domain.Category, error) {
			if fail {
				return domain.Category{}, errors.New("server error")
			}
			return domain.Category{ID: draft.Name, Name: draft.Name}, nil
		},
	}
	st := NewStore()
	c := NewController(api, st, notify.NewRecorder(), zap.NewNop())

	_, err := c.Create(context.Background(), domain.CategoryDraft{Name: "one"})
	assert.NoError(t, err)
	assert.Equal(t, 1, st.Len())

	fail = true
	_, err = c.Create(context.Background(), domain.CategoryDraft{Name: "two"})
	assert.Error(t, err)
	assert.Equal(t, 1, st.Len(), "failed create leaves the store untouched")

	fail = false
	_, err = c.Create(context.Background(), domain.CategoryDraft{Name: "three"})
	assert.NoError(t, err)
	assert.Equal(t, 2, st.Len())
}

func TestCreate_RequiresName(t *testing.T) {
	called := false
	api := &mockAPI{
		CreateCategoryFunc: func(ctx context.Context, draft domain.CategoryDraft) (domain.Category, error) {
			called = true
			return domain.Category{}, nil
		},
	}
	c := NewController(api, NewStore(), notify.NewRecorder(), zap.NewNop())

	_, err := c.Create(context.Background(), domain.CategoryDraft{Image: "https://img/x.png"})

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.False(t, called)
}

func TestUpdate_ReplacesServerCopy(t *testing.T) {
	api := &mockAPI{
		UpdateCategoryFunc: func(ctx context.Context, id string, draft domain.CategoryDraft) (domain.Category, error) {
			return domain.Category{ID: id, Name: draft.Name}, nil
		},
	}
	st := NewStore()
	st.ReplaceAll([]domain.Category{{ID: "c1", Name: "Dairy"}})
	c := NewController(api, st, notify.NewRecorder(), zap.NewNop())

	updated, err := c.Update(context.Background(), "c1", domain.CategoryDraft{Name: "Dairy & Eggs"})

	assert.NoError(t, err)
	assert.Equal(t, "Dairy & Eggs", updated.Name)
	got, _ := st.Get("c1")
	assert.Equal(t, "Dairy & Eggs", got.Name)
}

func TestDelete_RemovesAfterConfirmation(t *testing.T) {
	api := &mockAPI{
		DeleteCategoryFunc: func(ctx context.Context, id string) error { return nil },
	}
	st := NewStore()
	st.ReplaceAll([]domain.Category{{ID: "c1"}, {ID: "c2"}})
	c := NewController(api, st, notify.NewRecorder(), zap.NewNop())

	assert.NoError(t, c.Delete(context.Background(), "c1"))
	assert.Equal(t, 1, st.Len())
}

func TestDelete_FailureKeepsEntity(t *testing.T) {
	api := &mockAPI{
		DeleteCategoryFunc: func(ctx context.Context, id string) error {
			return apperrors.NewUnauthorizedError("unauthorized")
		},
	}
	rec := notify.NewRecorder()
	st := NewStore()
	st.ReplaceAll([]domain.Category{{ID: "c1"}})
	c := NewController(api, st, rec, zap.NewNop())

	err := c.Delete(context.Background(), "c1")

	assert.Error(t, err)
	assert.Equal(t, 1, st.Len())
	assert.Len(t, rec.ByLevel(notify.LevelError), 1)
}

func TestSortAndFilter(t *testing.T) {
	st := NewStore()
	st.ReplaceAll([]domain.Category{
		{ID: "c1", Name: "Snacks"},
		{ID: "c2", Name: "Bakery"},
		{ID: "c3", Name: "Dairy"},
	})
	c := NewController(&mockAPI{}, st, notify.NewRecorder(), zap.NewNop())

	sorted := c.SortBy("name", view.Ascending)
	assert.Equal(t, "Bakery", sorted[0].Name)
	assert.Equal(t, "Snacks", sorted[2].Name)

	assert.Len(t, c.FilterBySubstring("DAIRY"), 1)
	assert.Len(t, c.FilterBySubstring("a"), 3)
}
