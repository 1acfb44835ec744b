package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf/internal/flash"
	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	MsgReadStatusUpdated = "read status updated"
	MsgBookAdded         = "book added successfully"
	MsgBookExists        = "a book with this name already exists"
)

// Counters receives catalog mutation events.
type Counters interface {
	BookCreated()
	ReadToggled()
}

type noopCounters struct{}

func (noopCounters) BookCreated() {}
func (noopCounters) ReadToggled() {}

// BookHandler serves the two mutating pages: read-status toggle and add-book.
type BookHandler struct {
	repo     repository.BookRepository
	counters Counters
	log      *zap.Logger
}

func NewBookHandler(repo repository.BookRepository, counters Counters, log *zap.Logger) *BookHandler {
	if counters == nil {
		counters = noopCounters{}
	}
	return &BookHandler{repo: repo, counters: counters, log: log}
}

// RegisterRoutes mounts the handlers; guards run in front of the POST routes
// only.
func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup, guards ...gin.HandlerFunc) {
	r.GET("/add_book/", h.AddBookForm)

	mut := r.Group("", guards...)
	mut.POST("/add_book/", h.AddBook)
	mut.POST("/read_status/:id/", h.ToggleRead)
}

// ToggleRead godoc
// @Summary      Toggle read status
// @Description  Flips the read flag and redirects to the book page
// @Tags         books
// @Param        id   path  int  true  "Book ID"
// @Success      303  {string}  string  "Redirect to /book/{id}/"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /read_status/{id}/ [post]
func (h *BookHandler) ToggleRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c)
		return
	}

	if err := h.repo.ToggleRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		h.log.Error("toggle read status", zap.Uint("book_id", id), zap.Error(err))
		writeError(c, http.StatusInternalServerError, CodeReadStatusFailed, "failed to update read status")
		return
	}
	h.counters.ReadToggled()

	if err := flash.Add(c, flash.Success(MsgReadStatusUpdated)); err != nil {
		h.log.Warn("save flash message", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/book/%d/", id))
}

// AddBookForm godoc
// @Summary      Add-book form
// @Description  Describes the fields accepted by POST /add_book/
// @Tags         books
// @Produce      json
// @Success      200  {object}  AddBookFormView
// @Router       /add_book/ [get]
func (h *BookHandler) AddBookForm(c *gin.Context) {
	c.JSON(http.StatusOK, AddBookFormView{
		Messages: flash.Pop(c),
		Fields:   addBookFields,
	})
}

var addBookFields = []FormField{
	{Name: "name", Label: "Title", Required: true, MaxLength: model.BookNameMaxLen},
	{Name: "author", Label: "Author", Required: true},
	{Name: "genre", Label: "Genre", Required: true},
	{Name: "year_of_publication", Label: "Year of publication", Pattern: "^[0-9]+$"},
	{Name: "number_of_pages", Label: "Number of pages", Pattern: "^[0-9]+$"},
	{Name: "abstract", Label: "Abstract", Required: true, MaxLength: model.BookAbstractMaxLen},
}

// AddBook godoc
// @Summary      Add a book
// @Description  Validates the form and stores the book, creating its author and genre when new
// @Tags         books
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        payload  body      AddBookRequest  true  "Book to add"
// @Success      201      {object}  AddBookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error or duplicate name"
// @Failure      429      {object}  validation.ErrorResponse  "Rate limited"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /add_book/ [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	var req AddBookRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	book := model.Book{
		Name:              req.Name,
		YearOfPublication: parseOptionalInt(string(req.YearOfPublication)),
		NumberOfPages:     parseOptionalInt(string(req.NumberOfPages)),
		Abstract:          req.Abstract,
	}
	author := req.Author
	genre := req.Genre

	if err := h.repo.Create(c.Request.Context(), &book, author, genre); err != nil {
		if errors.Is(err, repository.ErrDuplicateBook) {
			writeError(c, http.StatusBadRequest, CodeBookExists, MsgBookExists)
			return
		}

		h.log.Error("create book",
			zap.String("name", book.Name),
			zap.String("author", author),
			zap.String("genre", genre),
			zap.Error(err),
		)
		writeError(c, http.StatusInternalServerError, CodeBookCreateFailed, "failed to add book")
		return
	}
	h.counters.BookCreated()

	c.JSON(http.StatusCreated, AddBookResponse{
		Message: MsgBookAdded,
		Book:    toBook(book),
	})
}
