package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"jits_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaService_Upload_KeyAndURL(t *testing.T) {
	store, _ := newTestMedia()
	svc := &mediaService{storage: store, now: func() time.Time { return time.UnixMilli(1700000000123) }}

	ref, err := svc.Upload(context.Background(), "courses", testImagePolicy, pngFile(t, "My Photo (1).png"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^courses/1700000000123-[0-9a-f-]{8}-My-Photo-1.png$`), ref.Key)
	assert.Equal(t, "https://cdn.test/"+ref.Key, ref.URL)
	assert.Equal(t, "image/png", ref.ContentType)

	_, ct, ok := store.Object(ref.Key)
	require.True(t, ok)
	assert.Equal(t, "image/png", ct)
}

func TestMediaService_Upload_PolicyViolations(t *testing.T) {
	store, svc := newTestMedia()
	ctx := context.Background()

	// Слишком большой файл
	big := fileHeader(t, "big.png", "image/png", []byte(strings.Repeat("x", testMaxSize+1)))
	_, err := svc.Upload(ctx, "courses", testImagePolicy, big)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))

	// Неподходящий тип
	pdf := fileHeader(t, "doc.pdf", "application/pdf", []byte("%PDF"))
	_, err = svc.Upload(ctx, "courses", testImagePolicy, pdf)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))

	// Тот же pdf разрешен политикой media
	_, err = svc.Upload(ctx, "blogs", testMediaPolicy, pdf)
	assert.NoError(t, err)

	assert.Len(t, store.Keys(), 1)
}

func TestMediaService_Upload_StorageFailureIsUpstream(t *testing.T) {
	store, svc := newTestMedia()
	store.FailSaves(errors.New("s3 down"))

	_, err := svc.Upload(context.Background(), "courses", testImagePolicy, pngFile(t, "a.png"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUpstreamFailure))
}

func TestDetectContentType_FallsBackToExtension(t *testing.T) {
	fh := fileHeader(t, "clip.mp4", "application/octet-stream", []byte("...."))
	assert.Equal(t, "video/mp4", detectContentType(fh))

	fh = fileHeader(t, "doc.pdf", "", []byte("%PDF"))
	assert.Equal(t, "application/pdf", detectContentType(fh))
	assert.Equal(t, "video", string(mediaTypeOf("video/mp4")))
	assert.Equal(t, "none", string(mediaTypeOf("application/pdf")))
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "passwd", safeFileName("../../etc/passwd"))
	assert.Equal(t, "file", safeFileName("..."))
	assert.Equal(t, "a-b.png", safeFileName(`C:\tmp\a b.png`))
}
