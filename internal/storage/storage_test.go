package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	objects map[string]bool
	deleted []string
}

func (f *fakeS3) DeleteObjectWithContext(ctx aws.Context, in *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.StringValue(in.Key))
	delete(f.objects, aws.StringValue(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

type fakeUploader struct {
	s3     *fakeS3
	inputs []*s3manager.UploadInput
	err    error
}

func (u *fakeUploader) Upload(in *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	return u.UploadWithContext(context.Background(), in, opts...)
}

func (u *fakeUploader) UploadWithContext(ctx aws.Context, in *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	if u.err != nil {
		return nil, u.err
	}
	u.inputs = append(u.inputs, in)
	u.s3.objects[aws.StringValue(in.Key)] = true
	return &s3manager.UploadOutput{}, nil
}

func TestS3BaseURL(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"aws virtual host", Config{Bucket: "jits"}, "https://jits.s3.ap-south-1.amazonaws.com"},
		{"custom endpoint", Config{Bucket: "jits", Endpoint: "http://minio:9000/"}, "http://minio:9000/jits"},
		{"explicit base url", Config{Bucket: "jits", Endpoint: "http://minio:9000", BaseURL: "https://cdn.jits.in"}, "https://cdn.jits.in"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s3BaseURL(tc.cfg, "ap-south-1"))
		})
	}
}

func TestS3Storage_SaveDelete(t *testing.T) {
	ctx := context.Background()
	client := &fakeS3{objects: map[string]bool{}}
	uploader := &fakeUploader{s3: client}
	s := newS3Storage(client, uploader, "jits", "https://jits.s3.ap-south-1.amazonaws.com/")

	require.NoError(t, s.Save(ctx, "courses/a.png", strings.NewReader("png"), "image/png"))
	require.Len(t, uploader.inputs, 1)
	assert.Equal(t, "image/png", aws.StringValue(uploader.inputs[0].ContentType))
	assert.Equal(t, "jits", aws.StringValue(uploader.inputs[0].Bucket))

	assert.True(t, client.objects["courses/a.png"])

	require.NoError(t, s.Delete(ctx, "courses/a.png"))
	assert.False(t, client.objects["courses/a.png"])
	assert.Equal(t, []string{"courses/a.png"}, client.deleted)

	assert.Equal(t, "https://jits.s3.ap-south-1.amazonaws.com/courses/a.png", s.URL("courses/a.png"))
}

func TestS3Storage_SaveError(t *testing.T) {
	client := &fakeS3{objects: map[string]bool{}}
	s := newS3Storage(client, &fakeUploader{s3: client, err: errors.New("access denied")}, "jits", "")

	err := s.Save(context.Background(), "k", strings.NewReader("x"), "text/plain")
	assert.ErrorContains(t, err, "access denied")
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: dir})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "blogs/post.png", strings.NewReader("data"), "image/png"))

	raw, err := os.ReadFile(filepath.Join(dir, "blogs", "post.png"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(raw))
	assert.Equal(t, "/files/blogs/post.png", s.URL("blogs/post.png"))

	rc, err := s.Open(ctx, "blogs/post.png")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "data", string(body))

	_, err = s.Open(ctx, "blogs")
	assert.ErrorIs(t, err, ErrNotFound, "каталог не отдается")

	// ключ не выходит за пределы каталога
	require.NoError(t, s.Save(ctx, "../escape.txt", strings.NewReader("x"), "text/plain"))
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "blogs/post.png"))
	require.NoError(t, s.Delete(ctx, "blogs/post.png"), "повторное удаление не ошибка")

	_, err = os.Stat(filepath.Join(dir, "blogs", "post.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage("")

	require.NoError(t, s.Save(ctx, "a", strings.NewReader("1"), "text/plain"))
	data, ct, ok := s.Object("a")
	require.True(t, ok)
	assert.Equal(t, "1", string(data))
	assert.Equal(t, "text/plain", ct)
	assert.Equal(t, "memory://blobs/a", s.URL("a"))

	_, err := s.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	s.FailDeletes(errors.New("boom"))
	assert.Error(t, s.Delete(ctx, "a"))
	assert.Equal(t, []string{"a"}, s.Keys())

	s.FailDeletes(nil)
	s.FailSaves(io.ErrUnexpectedEOF)
	assert.ErrorIs(t, s.Save(ctx, "b", strings.NewReader("2"), ""), io.ErrUnexpectedEOF)
	assert.Equal(t, []string{"a"}, s.Keys())
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.ErrorContains(t, err, "unsupported storage type")
}
