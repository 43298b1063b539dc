package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const MaxUploadBytes = 2 << 20

// Kind 決定上傳檔案的子目錄
type Kind string

const (
	KindAvatar    Kind = "avatars"
	KindThumbnail Kind = "events/thumbnails"
)

type FileStorage interface {
	Save(ctx context.Context, kind Kind, content io.Reader) (string, error)
	Delete(ctx context.Context, relPath string) error
	URL(relPath string) string
}

type LocalStorage struct {
	root     string
	baseURL  string
	maxBytes int64
	now      func() time.Time
}

func NewLocalStorage(root, baseURL string) *LocalStorage {
	return &LocalStorage{
		root:     root,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: MaxUploadBytes,
		now:      time.Now,
	}
}

// Save 檢查大小與內容類型後寫入 {kind}/{yyyy}/{mm}/{dd}/{uuid}{ext}，回傳相對路徑
func (s *LocalStorage) Save(ctx context.Context, kind Kind, content io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(content, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", apperrors.ErrFileTooLarge
	}

	mt := mimetype.Detect(data)
	if !isRasterImage(mt) {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFile, mt.String())
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := path.Join(string(kind), s.now().UTC().Format("2006/01/02"), uuid.NewString()+mt.Extension())
	full := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return rel, nil
}

// Delete 檔案不存在時視為成功
func (s *LocalStorage) Delete(ctx context.Context, relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	return s.baseURL + "/" + strings.TrimLeft(relPath, "/")
}

func (s *LocalStorage) resolve(relPath string) (string, error) {
	cleaned := path.Clean("/" + relPath)
	if cleaned == "/" {
		return "", fmt.Errorf("%w: empty path", apperrors.ErrInvalidInput)
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(cleaned, "/"))), nil
}

// svg 可夾帶 script，不接受
func isRasterImage(mt *mimetype.MIME) bool {
	if mt.Is("image/svg+xml") {
		return false
	}
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}
