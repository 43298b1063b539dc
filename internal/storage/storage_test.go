package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 透明 PNG
var tinyPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s := NewLocalStorage(t.TempDir(), "/media/")
	s.now = func() time.Time { return time.Date(2025, 4, 9, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestLocalStorage_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s := newTestStorage(t)

		rel, err := s.Save(ctx, KindAvatar, bytes.NewReader(tinyPNG))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(rel, "avatars/2025/04/09/"))
		assert.True(t, strings.HasSuffix(rel, ".png"))

		written, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
		require.NoError(t, err)
		assert.Equal(t, tinyPNG, written)
	})

	t.Run("UniqueNames", func(t *testing.T) {
		s := newTestStorage(t)

		a, err := s.Save(ctx, KindThumbnail, bytes.NewReader(tinyPNG))
		require.NoError(t, err)
		b, err := s.Save(ctx, KindThumbnail, bytes.NewReader(tinyPNG))
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
		assert.True(t, strings.HasPrefix(a, "events/thumbnails/"))
	})

	t.Run("TooLarge", func(t *testing.T) {
		s := newTestStorage(t)
		big := append(append([]byte{}, tinyPNG...), make([]byte, MaxUploadBytes)...)

		_, err := s.Save(ctx, KindAvatar, bytes.NewReader(big))

		assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	})

	t.Run("NotAnImage", func(t *testing.T) {
		s := newTestStorage(t)

		_, err := s.Save(ctx, KindAvatar, strings.NewReader("just some text"))

		assert.ErrorIs(t, err, apperrors.ErrUnsupportedFile)
	})

	t.Run("SVGRejected", func(t *testing.T) {
		s := newTestStorage(t)
		svg := `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`

		_, err := s.Save(ctx, KindAvatar, strings.NewReader(svg))

		assert.ErrorIs(t, err, apperrors.ErrUnsupportedFile)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		s := newTestStorage(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.Save(cancelled, KindAvatar, bytes.NewReader(tinyPNG))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	rel, err := s.Save(ctx, KindAvatar, bytes.NewReader(tinyPNG))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, rel))
	_, err = os.Stat(filepath.Join(s.root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(ctx, rel))
	assert.ErrorIs(t, s.Delete(ctx, ""), apperrors.ErrInvalidInput)
}

func TestLocalStorage_DeleteStaysInsideRoot(t *testing.T) {
	ctx := context.Background()
	parent := t.TempDir()
	outside := filepath.Join(parent, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	s := NewLocalStorage(filepath.Join(parent, "media"), "/media")

	require.NoError(t, s.Delete(ctx, "../keep.txt"))
	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestLocalStorage_URL(t *testing.T) {
	s := NewLocalStorage("media", "/media/")

	assert.Equal(t, "/media/avatars/a.png", s.URL("avatars/a.png"))
	assert.Equal(t, "", s.URL(""))
}
