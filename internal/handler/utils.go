package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf/internal/model"
)

// parseID reads the :id path segment. Anything but a plain unsigned integer
// is treated as an unknown page.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func toBook(b model.Book) Book {
	out := Book{
		ID:                b.ID,
		Name:              b.Name,
		YearOfPublication: b.YearOfPublication,
		NumberOfPages:     b.NumberOfPages,
		Abstract:          b.Abstract,
		IsRead:            b.IsRead,
		Added:             model.Timestamp{Time: b.Added},
	}
	if b.Author != nil {
		ref := toAuthorRef(*b.Author)
		out.Author = &ref
	}
	if b.Genre != nil {
		ref := toGenreRef(*b.Genre)
		out.Genre = &ref
	}
	return out
}

func toBooks(books []model.Book) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		out = append(out, toBook(b))
	}
	return out
}

func toAuthorRef(a model.Author) AuthorRef {
	return AuthorRef{ID: a.ID, Fullname: a.Fullname}
}

func toGenreRef(g model.Genre) GenreRef {
	return GenreRef{ID: g.ID, Name: g.Name}
}
