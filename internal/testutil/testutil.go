// Package testutil holds helpers shared by package tests: a fresh in-memory
// SQLite catalog per test and small seeding functions.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookshelf/internal/db"
	"github.com/snnyvrz/bookshelf/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	gdb, err := db.OpenSQLite(dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

func SeedAuthor(t *testing.T, gdb *gorm.DB, fullname string) model.Author {
	t.Helper()

	author := model.Author{Fullname: fullname}
	if err := gdb.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", fullname, err)
	}
	return author
}

func SeedGenre(t *testing.T, gdb *gorm.DB, name string) model.Genre {
	t.Helper()

	genre := model.Genre{Name: name}
	if err := gdb.Create(&genre).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}
	return genre
}

// SeedBook inserts a book linked to the given author and genre. A zero added
// time lets the database assign it.
func SeedBook(t *testing.T, gdb *gorm.DB, author *model.Author, genre *model.Genre, name string, added time.Time) model.Book {
	t.Helper()

	book := model.Book{
		Name:     name,
		Abstract: "About " + name,
		Added:    added,
	}
	if author != nil {
		book.AuthorID = &author.ID
	}
	if genre != nil {
		book.GenreID = &genre.ID
	}

	if err := gdb.Omit("Author", "Genre").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", name, err)
	}
	return book
}

func IntPtr(v int) *int {
	return &v
}
