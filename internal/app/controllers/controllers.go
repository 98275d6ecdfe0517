// Package controllers is the presentation layer: it binds forms, calls
// services, and answers with rendered pages or redirects. Every user-facing
// error is recovered here into a flash message or a not-found page; nothing
// propagates to the client as a raw fault.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/registrar/internal/middleware"
	"github.com/campushq/registrar/internal/pkg/apperrors"
	"github.com/campushq/registrar/internal/pkg/flash"
)

// render wraps c.HTML, attaching the pending flash message and the current
// user to every page.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = flash.Pop(c)
	}
	if _, ok := data["User"]; !ok {
		data["User"] = middleware.CurrentUser(c)
	}
	c.HTML(status, name, data)
}

// renderNotFound answers a missing-id lookup with a 404 page instead of an
// error fault.
func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "not-found.html", gin.H{
		"Title": "Not Found",
	})
}

// parseID parses a numeric path parameter; any garbage counts as not found.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// redirectWithError flashes a message for the originating form and redirects
// back to it.
func redirectWithError(c *gin.Context, target, message string) {
	flash.Error(c, message)
	c.Redirect(http.StatusFound, target)
}

// handleRecordError recovers a record service error at the request boundary:
// not-found renders the 404 page, everything else becomes a flash + redirect
// back to the form.
func handleRecordError(c *gin.Context, err error, backURL string) {
	var custom *apperrors.CustomError

	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound), errors.Is(err, apperrors.ErrCourseNotFound):
		renderNotFound(c)
	case errors.Is(err, apperrors.ErrCourseCodeExists):
		redirectWithError(c, backURL, "A course with this code already exists.")
	case errors.As(err, &custom) && errors.Is(err, apperrors.ErrValidationFailed):
		redirectWithError(c, backURL, custom.Message)
	default:
		redirectWithError(c, backURL, "Something went wrong. Please try again.")
	}
}
