package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_AddsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("development") })

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-7")
	CtxWithError(ctx, "upload failed", errors.New("boom"), "key", "courses/a.png")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "user-7", entry["user_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "courses/a.png", entry["key"])
	assert.Equal(t, "ERROR", entry["level"])
}

func TestWorkerLog_Levels(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("development") })

	WorkerLog("reset_tokens", "purge", nil, "purged", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 3, entry["purged"])
}
