package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/files",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

func TestLocalStoragePutGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	key := ResultKey("user-1", uuid.New())
	payload := `{"bucket":"science"}`

	err := s.Put(ctx, key, strings.NewReader(payload), PutOptions{ContentType: "application/json"})
	require.NoError(t, err)

	reader, info, err := s.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
	assert.Equal(t, "application/json", info.ContentType)
	assert.Equal(t, int64(len(payload)), info.Size)
}

func TestLocalStorageOverwrite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	key := "results/user-1/result.json"
	require.NoError(t, s.Put(ctx, key, strings.NewReader("v1"), PutOptions{}))

	err := s.Put(ctx, key, strings.NewReader("v2"), PutOptions{})
	require.Error(t, err)
	assert.True(t, IsKeyExists(err))

	require.NoError(t, s.Put(ctx, key, strings.NewReader("v2"), PutOptions{Overwrite: true}))

	reader, _, err := s.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	assert.Equal(t, "v2", string(data))
}

func TestLocalStorageMaxSize(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Put(ctx, "big.json", strings.NewReader("0123456789"), PutOptions{MaxSize: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)

	// The oversized file must not linger.
	exists, err := s.Exists(ctx, "big.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, _, err := s.Get(context.Background(), "missing.json")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestLocalStorageDeleteIdempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a.json", strings.NewReader("{}"), PutOptions{}))
	require.NoError(t, s.Delete(ctx, "a.json"))
	require.NoError(t, s.Delete(ctx, "a.json"))

	exists, err := s.Exists(ctx, "a.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Put(ctx, "../escape.json", strings.NewReader("{}"), PutOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = s.URL(ctx, "", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestLocalStorageURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.URL(context.Background(), "results/u/r.json", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/results/u/r.json", url)
}
