// Package media stores store and food images in S3-compatible blob storage.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const MaxImageSize = 5 << 20

var ErrUnsupportedType = errors.New("unsupported image type")

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type Uploader interface {
	// Upload stores data under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// DetectImageType sniffs data and rejects anything that is not an accepted image.
func DetectImageType(data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}

	if _, ok := extensions[contentType]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	return contentType, nil
}

// ObjectKey builds "<prefix>/<id>/<random>.<ext>" so re-uploads never
// overwrite an image a client may still have cached.
func ObjectKey(prefix, id, contentType string) (string, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	return fmt.Sprintf("%s/%s/%s.%s", prefix, id, uuid.NewString(), ext), nil
}
