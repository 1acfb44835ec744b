//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/bookshelf/internal/config"
	"github.com/snnyvrz/bookshelf/internal/db"
	"github.com/snnyvrz/bookshelf/internal/handler"
	"github.com/snnyvrz/bookshelf/internal/metrics"
	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/router"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	testDB     *gorm.DB
	testRouter *gin.Engine
)

func TestMain(m *testing.M) {
	cfg := &config.Config{
		DBDriver:  config.DriverPostgres,
		DBHost:    os.Getenv("POSTGRES_HOST"),
		DBPort:    os.Getenv("POSTGRES_PORT"),
		DBUser:    os.Getenv("POSTGRES_USER"),
		DBPass:    os.Getenv("POSTGRES_PASSWORD"),
		DBName:    os.Getenv("POSTGRES_DB"),
		DBSSLMode: "disable",
		TZ:        os.Getenv("TZ"),
	}
	if cfg.TZ == "" {
		cfg.TZ = "UTC"
	}

	gdb, err := db.Open(cfg, zap.NewNop())
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	testDB = gdb

	if err := db.Reset(gdb); err != nil {
		panic("failed to migrate: " + err.Error())
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		panic("failed to get sql.DB: " + err.Error())
	}

	gin.SetMode(gin.TestMode)
	testRouter = router.New(router.Deps{
		Books:     repository.NewGormBookRepository(gdb),
		Genres:    repository.NewGenreRepository(gdb),
		Authors:   repository.NewAuthorRepository(gdb),
		DB:        sqlDB,
		Log:       zap.NewNop(),
		Metrics:   metrics.New(),
		Secret:    []byte(uuid.NewString()),
		StartTime: time.Now(),
		Version:   "integration",
	})

	code := m.Run()
	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()
	sqlDB, err := testDB.DB()
	if err != nil {
		t.Fatalf("get sql.DB failed: %v", err)
	}
	_, err = sqlDB.Exec("TRUNCATE TABLE books, authors, genres RESTART IDENTITY CASCADE;")
	if err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func addBook(t *testing.T, client *http.Client, baseURL, name, author, genre string) *http.Response {
	t.Helper()

	form := url.Values{
		"name":     {name},
		"author":   {author},
		"genre":    {genre},
		"abstract": {"About " + name},
	}
	resp, err := client.PostForm(baseURL+"/add_book/", form)
	if err != nil {
		t.Fatalf("failed to add book: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
}

func TestAddBookAndBrowse(t *testing.T) {
	resetDB(t)
	srv := httptest.NewServer(testRouter)
	defer srv.Close()
	client := newClient(t)

	resp := addBook(t, client, srv.URL, "Dune", "Frank Herbert", "Sci-Fi")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created handler.AddBookResponse
	decodeBody(t, resp, &created)

	resp = addBook(t, client, srv.URL, "Dune Messiah", "Frank Herbert", "Sci-Fi")
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	resp, err := client.Get(fmt.Sprintf("%s/author/%d/", srv.URL, created.Book.Author.ID))
	if err != nil {
		t.Fatalf("get author failed: %v", err)
	}
	var view handler.AuthorBooksView
	decodeBody(t, resp, &view)
	if len(view.Books) != 2 {
		t.Errorf("expected 2 books for author, got %d", len(view.Books))
	}

	resp, err = client.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("get recent failed: %v", err)
	}
	var recent handler.RecentBooksView
	decodeBody(t, resp, &recent)
	if len(recent.Books) != 2 || recent.Books[0].Name != "Dune Messiah" {
		t.Errorf("unexpected recent books %+v", recent.Books)
	}
}

func TestAddBook_DuplicateUsesUniqueIndex(t *testing.T) {
	resetDB(t)
	srv := httptest.NewServer(testRouter)
	defer srv.Close()
	client := newClient(t)

	resp := addBook(t, client, srv.URL, "Dune", "Frank Herbert", "Sci-Fi")
	resp.Body.Close()

	resp = addBook(t, client, srv.URL, "Dune", "Other Author", "Other Genre")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var authors int64
	testDB.Model(&model.Author{}).Count(&authors)
	if authors != 1 {
		t.Errorf("expected duplicate to roll back author creation, got %d authors", authors)
	}

	err := testDB.Create(&model.Book{Name: "Dune", Abstract: "direct insert"}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected unique index to reject direct insert, got %v", err)
	}
}

func TestConcurrentAdds_ConvergeOnOneAuthor(t *testing.T) {
	resetDB(t)
	repo := repository.NewGormBookRepository(testDB)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			book := model.Book{Name: fmt.Sprintf("Volume %d", i), Abstract: "part of a series"}
			errs <- repo.Create(context.Background(), &book, "Shared Author", "Shared Genre")
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("unexpected create error: %v", err)
		}
	}

	var authors, genres, books int64
	testDB.Model(&model.Author{}).Count(&authors)
	testDB.Model(&model.Genre{}).Count(&genres)
	testDB.Model(&model.Book{}).Count(&books)
	if authors != 1 || genres != 1 || books != n {
		t.Errorf("expected 1 author, 1 genre, %d books; got %d, %d, %d", n, authors, genres, books)
	}
}

func TestToggleReadFollowsRedirectWithFlash(t *testing.T) {
	resetDB(t)
	srv := httptest.NewServer(testRouter)
	defer srv.Close()
	client := newClient(t)

	resp := addBook(t, client, srv.URL, "Dune", "Frank Herbert", "Sci-Fi")
	var created handler.AddBookResponse
	decodeBody(t, resp, &created)

	resp, err := client.Post(fmt.Sprintf("%s/read_status/%d/", srv.URL, created.Book.ID), "application/x-www-form-urlencoded", strings.NewReader(""))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected redirect to land on 200, got %d", resp.StatusCode)
	}

	var view handler.BookView
	decodeBody(t, resp, &view)
	if !view.Book.IsRead {
		t.Errorf("expected book to be read")
	}
	if len(view.Messages) != 1 || view.Messages[0].Text != handler.MsgReadStatusUpdated {
		t.Errorf("expected read-status flash, got %+v", view.Messages)
	}
}

func TestDeletingAuthorKeepsBooks(t *testing.T) {
	resetDB(t)
	repo := repository.NewGormBookRepository(testDB)

	book := model.Book{Name: "Dune", Abstract: "spice"}
	if err := repo.Create(context.Background(), &book, "Frank Herbert", "Sci-Fi"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := testDB.Delete(&model.Author{}, *book.AuthorID).Error; err != nil {
		t.Fatalf("delete author failed: %v", err)
	}

	var stored model.Book
	if err := testDB.First(&stored, book.ID).Error; err != nil {
		t.Fatalf("expected book to survive: %v", err)
	}
	if stored.AuthorID != nil {
		t.Errorf("expected author_id to be nulled, got %v", *stored.AuthorID)
	}
}

func TestReady(t *testing.T) {
	srv := httptest.NewServer(testRouter)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ready")
	if err != nil {
		t.Fatalf("ready failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
