package main

import (
	"errors"
	"net/http"

	"github.com/Beka01247/dormeats/internal/media"
	"github.com/Beka01247/dormeats/internal/repo"
	"github.com/Beka01247/dormeats/internal/service"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusNotFound, "not found")
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("conflict response", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusConflict, err.Error())
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path)

	writeJsonError(w, http.StatusForbidden, "forbidden")
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) payloadTooLargeResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("payload too large", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusRequestEntityTooLarge, "file is too large")
}

func (app *application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("service unavailable", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusServiceUnavailable, err.Error())
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

// serviceError maps errors returned by the service layer to responses.
func (app *application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, repo.ErrConflict), errors.Is(err, service.ErrStoreNotApproved):
		app.conflictResponse(w, r, err)
	case errors.Is(err, service.ErrForbidden):
		app.forbiddenResponse(w, r)
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidStats),
		errors.Is(err, media.ErrUnsupportedType):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, service.ErrImportUnavailable):
		app.serviceUnavailableResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}
