package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf/internal/validation"
)

const (
	CodePageNotFound      = "PAGE_NOT_FOUND"
	CodeBookExists        = "BOOK_ALREADY_EXISTS"
	CodeBookCreateFailed  = "BOOK_CREATE_FAILED"
	CodeCatalogReadFailed = "CATALOG_READ_FAILED"
	CodeReadStatusFailed  = "READ_STATUS_FAILED"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// NotFound answers every path and id that does not resolve to a page.
func NotFound(c *gin.Context) {
	writeError(c, http.StatusNotFound, CodePageNotFound, "page not found")
}
