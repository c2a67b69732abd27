package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/adboardhq/adboard/internal/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnsupportedType is returned for attachments that are not .png or .jpg.
var ErrUnsupportedType = errors.New("unsupported_image_type")

// Store writes banner images to a directory on local disk and hands back the
// relative path that gets persisted on the banner row. Filenames are suffixed
// with a uuid rather than a wall-clock timestamp so concurrent uploads of the
// same file cannot collide.
type Store struct {
	dir string
	log *zap.Logger
}

func New(cfg config.Config, log *zap.Logger) (*Store, error) {
	dir := strings.TrimSpace(cfg.UploadDir)
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &Store{
		dir: dir,
		log: log.Named("upload.store"),
	}, nil
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Save persists the attached file and returns its stored relative path.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".png" && ext != ".jpg" {
		return "", ErrUnsupportedType
	}

	base := strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	stored := filepath.ToSlash(filepath.Join(s.dir, name))
	s.log.Info("image stored", zap.String("path", stored))
	return stored, nil
}

// List returns the filenames currently present in the upload directory.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}
