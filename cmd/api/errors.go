package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Abdulllah321/sports-landing-sub001/internal/browse"
	"github.com/Abdulllah321/sports-landing-sub001/internal/records"
	"github.com/go-playground/validator/v10"
)

type errInvalidRequest string

func (e errInvalidRequest) Error() string { return string(e) }

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, "not found")
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("conflict response", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusConflict, err.Error())
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	seconds := max(int(retryAfter.Round(time.Second)/time.Second), 1)
	w.Header().Set("Retry-After", strconv.Itoa(seconds))

	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+strconv.Itoa(seconds)+"s")
}

// recordError maps a catalog operation error onto the matching response.
func (app *application) recordError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid errInvalidRequest
	var validation validator.ValidationErrors

	switch {
	case errors.Is(err, records.ErrNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, records.ErrConflict):
		app.conflictResponse(w, r, err)
	case errors.Is(err, browse.ErrInvalidStatus),
		errors.As(err, &invalid),
		errors.As(err, &validation):
		app.badRequestResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}
