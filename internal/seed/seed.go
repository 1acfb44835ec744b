// Package seed loads the bundled sample catalog.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

//go:embed books.json
var booksJSON []byte

type Entry struct {
	Name              string          `json:"name"`
	Author            string          `json:"author"`
	Genre             string          `json:"genre"`
	YearOfPublication *int            `json:"year_of_publication"`
	NumberOfPages     *int            `json:"number_of_pages"`
	Abstract          string          `json:"abstract"`
	Added             model.Timestamp `json:"added"`
}

// Entries returns the bundled dataset.
func Entries() ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(booksJSON, &entries); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return entries, nil
}

// Load stores every entry through the regular creation path. Books that
// already exist are skipped, so running it twice is harmless.
func Load(ctx context.Context, repo repository.BookRepository, entries []Entry, log *zap.Logger) (int, error) {
	created := 0
	for _, e := range entries {
		book := model.Book{
			Name:              norm.NFC.String(e.Name),
			YearOfPublication: e.YearOfPublication,
			NumberOfPages:     e.NumberOfPages,
			Abstract:          e.Abstract,
			Added:             e.Added.Time,
		}

		err := repo.Create(ctx, &book, norm.NFC.String(e.Author), norm.NFC.String(e.Genre))
		if errors.Is(err, repository.ErrDuplicateBook) {
			log.Debug("seed book already present", zap.String("name", e.Name))
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seed %q: %w", e.Name, err)
		}
		created++
	}

	log.Info("catalog seeded", zap.Int("books", created))
	return created, nil
}
