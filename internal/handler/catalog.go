package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf/internal/flash"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogHandler serves the read-only catalog pages.
type CatalogHandler struct {
	books   repository.BookRepository
	genres  repository.GenreRepository
	authors repository.AuthorRepository
	log     *zap.Logger
}

func NewCatalogHandler(
	books repository.BookRepository,
	genres repository.GenreRepository,
	authors repository.AuthorRepository,
	log *zap.Logger,
) *CatalogHandler {
	return &CatalogHandler{books: books, genres: genres, authors: authors, log: log}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.RecentBooks)
	r.GET("/book/:id/", h.GetBook)
	r.GET("/all_genres/", h.ListGenres)
	r.GET("/all_authors/", h.ListAuthors)
	r.GET("/genre/:id/", h.BooksByGenre)
	r.GET("/author/:id/", h.BooksByAuthor)
}

// RecentBooks godoc
// @Summary      Recently added books
// @Description  The 15 most recently added books, newest first
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  RecentBooksView
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       / [get]
func (h *CatalogHandler) RecentBooks(c *gin.Context) {
	books, err := h.books.Recent(c.Request.Context(), repository.RecentBooksLimit)
	if err != nil {
		h.readFailed(c, "recent books", err)
		return
	}

	c.JSON(http.StatusOK, RecentBooksView{
		Messages: flash.Pop(c),
		Books:    toBooks(books),
	})
}

// GetBook godoc
// @Summary      Book details
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookView
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /book/{id}/ [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c)
		return
	}

	book, err := h.books.FindByID(c.Request.Context(), id)
	if err != nil {
		h.lookupFailed(c, "book", err)
		return
	}

	c.JSON(http.StatusOK, BookView{
		Messages: flash.Pop(c),
		Book:     toBook(*book),
	})
}

// ListGenres godoc
// @Summary      All genres
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  GenresView
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /all_genres/ [get]
func (h *CatalogHandler) ListGenres(c *gin.Context) {
	genres, err := h.genres.List(c.Request.Context())
	if err != nil {
		h.readFailed(c, "genres", err)
		return
	}

	refs := make([]GenreRef, 0, len(genres))
	for _, g := range genres {
		refs = append(refs, toGenreRef(g))
	}

	c.JSON(http.StatusOK, GenresView{
		Messages: flash.Pop(c),
		Genres:   refs,
	})
}

// ListAuthors godoc
// @Summary      All authors
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  AuthorsView
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /all_authors/ [get]
func (h *CatalogHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		h.readFailed(c, "authors", err)
		return
	}

	refs := make([]AuthorRef, 0, len(authors))
	for _, a := range authors {
		refs = append(refs, toAuthorRef(a))
	}

	c.JSON(http.StatusOK, AuthorsView{
		Messages: flash.Pop(c),
		Authors:  refs,
	})
}

// BooksByGenre godoc
// @Summary      Books of a genre
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Genre ID"
// @Success      200  {object}  GenreBooksView
// @Failure      404  {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genre/{id}/ [get]
func (h *CatalogHandler) BooksByGenre(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c)
		return
	}

	genre, err := h.genres.FindWithBooks(c.Request.Context(), id)
	if err != nil {
		h.lookupFailed(c, "genre", err)
		return
	}

	c.JSON(http.StatusOK, GenreBooksView{
		Messages: flash.Pop(c),
		Genre:    toGenreRef(*genre),
		Books:    toBooks(genre.Books),
	})
}

// BooksByAuthor godoc
// @Summary      Books of an author
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Author ID"
// @Success      200  {object}  AuthorBooksView
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /author/{id}/ [get]
func (h *CatalogHandler) BooksByAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c)
		return
	}

	author, err := h.authors.FindWithBooks(c.Request.Context(), id)
	if err != nil {
		h.lookupFailed(c, "author", err)
		return
	}

	c.JSON(http.StatusOK, AuthorBooksView{
		Messages: flash.Pop(c),
		Author:   toAuthorRef(*author),
		Books:    toBooks(author.Books),
	})
}

func (h *CatalogHandler) lookupFailed(c *gin.Context, what string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c)
		return
	}
	h.readFailed(c, what, err)
}

func (h *CatalogHandler) readFailed(c *gin.Context, what string, err error) {
	h.log.Error("catalog read failed", zap.String("what", what), zap.Error(err))
	writeError(c, http.StatusInternalServerError, CodeCatalogReadFailed, "failed to load "+what)
}
