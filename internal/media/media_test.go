package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestDetectImageType(t *testing.T) {
	contentType, err := DetectImageType(pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	contentType, err = DetectImageType([]byte("\xff\xd8\xff\xe0\x00\x10JFIF"))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)

	_, err = DetectImageType([]byte("<html><body>hi</body></html>"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestObjectKey(t *testing.T) {
	key, err := ObjectKey("foods", "abc123", "image/webp")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "foods/abc123/"))
	assert.True(t, strings.HasSuffix(key, ".webp"))

	other, err := ObjectKey("foods", "abc123", "image/webp")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)

	_, err = ObjectKey("foods", "abc123", "image/gif")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com", PublicBaseURL(Config{Bucket: "b", PublicURL: "https://cdn.example.com/"}))
	assert.Equal(t, "http://minio:9000/dorm", PublicBaseURL(Config{Bucket: "dorm", Endpoint: "http://minio:9000"}))
	assert.Equal(t, "https://dorm.s3.ap-southeast-1.amazonaws.com", PublicBaseURL(Config{Bucket: "dorm", Region: "ap-southeast-1"}))
}
