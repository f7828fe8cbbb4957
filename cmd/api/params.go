package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Beka01247/dormeats/internal/media"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID    = errors.New("invalid ID format")
	ErrFileTooLarge = errors.New("file is too large")
)

func objectIDParam(r *http.Request, name string) (primitive.ObjectID, error) {
	value := chi.URLParam(r, name)
	if value == "" {
		return primitive.NilObjectID, fmt.Errorf("%s is required", name)
	}

	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}

	return id, nil
}

// intQuery reads a positive integer query parameter capped at max.
func intQuery(r *http.Request, name string, def, max int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	if n > max {
		n = max
	}

	return n, nil
}

// readImage pulls the multipart "image" field, limited to media.MaxImageSize.
func readImage(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, media.MaxImageSize+1<<20)

	if err := r.ParseMultipartForm(media.MaxImageSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, ErrFileTooLarge
		}
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		return nil, fmt.Errorf("image field is required: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, media.MaxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > media.MaxImageSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

func (app *application) imageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrFileTooLarge) {
		app.payloadTooLargeResponse(w, r, err)
		return
	}
	app.badRequestResponse(w, r, err)
}
