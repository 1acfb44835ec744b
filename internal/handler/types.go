package handler

import (
	"bytes"
	"encoding/json"

	"github.com/snnyvrz/bookshelf/internal/flash"
	"github.com/snnyvrz/bookshelf/internal/model"
	"golang.org/x/text/unicode/norm"
)

type AuthorRef struct {
	ID       uint   `json:"id"`
	Fullname string `json:"fullname"`
}

type GenreRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Book struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	YearOfPublication *int            `json:"year_of_publication"`
	NumberOfPages     *int            `json:"number_of_pages"`
	Abstract          string          `json:"abstract"`
	IsRead            bool            `json:"is_read"`
	Added             model.Timestamp `json:"added" swaggertype:"string" example:"2024-01-05T09:00:00Z"`
	Author            *AuthorRef      `json:"author"`
	Genre             *GenreRef       `json:"genre"`
}

type RecentBooksView struct {
	Messages []flash.Message `json:"messages"`
	Books    []Book          `json:"books"`
}

type BookView struct {
	Messages []flash.Message `json:"messages"`
	Book     Book            `json:"book"`
}

type GenresView struct {
	Messages []flash.Message `json:"messages"`
	Genres   []GenreRef      `json:"genres"`
}

type AuthorsView struct {
	Messages []flash.Message `json:"messages"`
	Authors  []AuthorRef     `json:"authors"`
}

type GenreBooksView struct {
	Messages []flash.Message `json:"messages"`
	Genre    GenreRef        `json:"genre"`
	Books    []Book          `json:"books"`
}

type AuthorBooksView struct {
	Messages []flash.Message `json:"messages"`
	Author   AuthorRef       `json:"author"`
	Books    []Book          `json:"books"`
}

// NumberText holds an optional whole number as submitted. Forms send text;
// JSON may send either a string or a bare number. The digits rule decides
// whether it is acceptable.
type NumberText string

func (n *NumberText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberText(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumberText(num.String())
	return nil
}

// AddBookRequest is the add-book form. Numbers arrive as text and are checked
// with the digits rule so "12a" is reported instead of failing the bind.
type AddBookRequest struct {
	Name              string     `form:"name" json:"name" binding:"required,max=50"`
	Author            string     `form:"author" json:"author" binding:"required"`
	Genre             string     `form:"genre" json:"genre" binding:"required"`
	Abstract          string     `form:"abstract" json:"abstract" binding:"required,max=500"`
	YearOfPublication NumberText `form:"year_of_publication" json:"year_of_publication" binding:"omitempty,digits" swaggertype:"string" example:"1965"`
	NumberOfPages     NumberText `form:"number_of_pages" json:"number_of_pages" binding:"omitempty,digits" swaggertype:"string" example:"412"`
}

// Normalize puts names in NFC so that lengths are checked, and rows looked
// up, in the form they are stored.
func (r *AddBookRequest) Normalize() {
	r.Name = norm.NFC.String(r.Name)
	r.Author = norm.NFC.String(r.Author)
	r.Genre = norm.NFC.String(r.Genre)
}

func (AddBookRequest) FieldMessages() map[string]string {
	return map[string]string{
		"name.required":              "book name is required",
		"name.max":                   "book name must be at most 50 characters",
		"author.required":            "author is required",
		"genre.required":             "genre is required",
		"abstract.required":          "abstract is required",
		"abstract.max":               "abstract must be at most 500 characters",
		"year_of_publication.digits": "year of publication must contain digits only",
		"number_of_pages.digits":     "number of pages must contain digits only",
	}
}

type AddBookResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

type FormField struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Required  bool   `json:"required"`
	MaxLength int    `json:"max_length,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

type AddBookFormView struct {
	Messages []flash.Message `json:"messages"`
	Fields   []FormField     `json:"fields"`
}
