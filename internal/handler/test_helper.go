package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf/internal/flash"
	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeBookRepo struct {
	RecentFn     func(ctx context.Context, limit int) ([]model.Book, error)
	FindByIDFn   func(ctx context.Context, id uint) (*model.Book, error)
	ToggleReadFn func(ctx context.Context, id uint) error
	CreateFn     func(ctx context.Context, b *model.Book, author, genre string) error
}

func (f *fakeBookRepo) Recent(ctx context.Context, limit int) ([]model.Book, error) {
	if f.RecentFn != nil {
		return f.RecentFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookRepo) ToggleRead(ctx context.Context, id uint) error {
	if f.ToggleReadFn != nil {
		return f.ToggleReadFn(ctx, id)
	}
	return nil
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book, author, genre string) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b, author, genre)
	}
	return nil
}

type fakeGenreRepo struct {
	ListFn          func(ctx context.Context) ([]model.Genre, error)
	FindWithBooksFn func(ctx context.Context, id uint) (*model.Genre, error)
}

func (f *fakeGenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeGenreRepo) FindWithBooks(ctx context.Context, id uint) (*model.Genre, error) {
	if f.FindWithBooksFn != nil {
		return f.FindWithBooksFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeAuthorRepo struct {
	ListFn          func(ctx context.Context) ([]model.Author, error)
	FindWithBooksFn func(ctx context.Context, id uint) (*model.Author, error)
}

func (f *fakeAuthorRepo) List(ctx context.Context) ([]model.Author, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) FindWithBooks(ctx context.Context, id uint) (*model.Author, error) {
	if f.FindWithBooksFn != nil {
		return f.FindWithBooksFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

type countingCounters struct {
	created int
	toggled int
}

func (c *countingCounters) BookCreated() { c.created++ }
func (c *countingCounters) ReadToggled() { c.toggled++ }

func setupTestRouterWithRepos(
	bookRepo repository.BookRepository,
	genreRepo repository.GenreRepository,
	authorRepo repository.AuthorRepository,
	counters Counters,
) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(flash.Middleware([]byte("test-secret")))

	NewCatalogHandler(bookRepo, genreRepo, authorRepo, zap.NewNop()).RegisterRoutes(r.Group(""))
	NewBookHandler(bookRepo, counters, zap.NewNop()).RegisterRoutes(r.Group(""))
	r.NoRoute(NotFound)

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	return setupTestRouterWithRepos(
		repository.NewGormBookRepository(db),
		repository.NewGenreRepository(db),
		repository.NewAuthorRepository(db),
		nil,
	)
}

func doRequest(r http.Handler, method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
}

func validBookForm(name string) url.Values {
	return url.Values{
		"name":                {name},
		"author":              {"Frank Herbert"},
		"genre":               {"Sci-Fi"},
		"year_of_publication": {"1965"},
		"number_of_pages":     {"412"},
		"abstract":            {"Spice, sandworms and politics."},
	}
}
