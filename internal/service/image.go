package service

import (
	"context"
	"fmt"

	"github.com/Beka01247/dormeats/internal/media"
)

const (
	imagePrefixStores = "stores"
	imagePrefixFoods  = "foods"
)

func uploadImage(ctx context.Context, uploader media.Uploader, prefix, id string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", media.ErrUnsupportedType)
	}

	contentType, err := media.DetectImageType(data)
	if err != nil {
		return "", err
	}

	key, err := media.ObjectKey(prefix, id, contentType)
	if err != nil {
		return "", err
	}

	url, err := uploader.Upload(ctx, key, contentType, data)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return url, nil
}
