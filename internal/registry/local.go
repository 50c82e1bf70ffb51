package registry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gianca04/face-recognition/internal/domain"
	"github.com/gianca04/face-recognition/internal/extractor"
)

// imageExtensions are the reference image formats the directory scan accepts,
// matched case-insensitively
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Local sources known faces from a persistent directory of reference images.
// The identifier is the filename stem; the encoding is computed once at load
// time and kept in memory. Add and Remove mutate both the directory and the
// in-memory map under a single writer lock.
type Local struct {
	dir       string
	extractor extractor.Extractor
	logger    *slog.Logger

	mu    sync.RWMutex
	faces map[string]domain.Embedding
}

// NewLocal creates a local registry backed by dir and scans it immediately.
// Files that fail extraction are skipped with a warning; they never abort
// the load.
func NewLocal(ctx context.Context, dir string, ext extractor.Extractor, logger *slog.Logger) (*Local, error) {
	l := &Local{
		dir:       dir,
		extractor: ext,
		logger:    logger,
		faces:     make(map[string]domain.Embedding),
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create faces dir: %w", err)
	}

	if err := l.Reload(ctx); err != nil {
		return nil, err
	}

	return l, nil
}

// Reload rescans the backing directory and rebuilds the in-memory map
func (l *Local) Reload(ctx context.Context) error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("scan faces dir: %w", err)
	}

	faces := make(map[string]domain.Embedding)
	for _, entry := range entries {
		if entry.IsDir() || !isPicture(entry.Name()) {
			continue
		}

		path := filepath.Join(l.dir, entry.Name())
		image, err := os.ReadFile(path)
		if err != nil {
			l.logger.Warn("skipping unreadable reference image", "path", path, "error", err)
			continue
		}

		encoding, err := l.extractor.ExtractOne(ctx, image)
		if err != nil {
			l.logger.Warn("skipping reference image without a usable face", "path", path, "error", err)
			continue
		}

		faces[fileStem(entry.Name())] = encoding
	}

	l.mu.Lock()
	l.faces = faces
	l.mu.Unlock()

	return nil
}

// Load returns the current known faces. The scope is ignored: a local
// directory holds a single flat registry.
func (l *Local) Load(ctx context.Context, scope string) ([]domain.KnownFace, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	known := make([]domain.KnownFace, 0, len(l.faces))
	for id, encoding := range l.faces {
		known = append(known, domain.KnownFace{ID: id, Encoding: encoding})
	}

	sort.Slice(known, func(i, j int) bool { return known[i].ID < known[j].ID })
	return known, nil
}

// Add computes the encoding for the image, persists it as <id>.jpg and
// replaces any prior entry for the identifier
func (l *Local) Add(ctx context.Context, scope, id string, image []byte) error {
	if !validID(id) {
		return domain.ErrValidationFailed.WithError(fmt.Errorf("invalid face id %q", id))
	}

	encoding, err := l.extractor.ExtractOne(ctx, image)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	path := filepath.Join(l.dir, id+".jpg")
	if err := os.WriteFile(path, image, 0o644); err != nil {
		return fmt.Errorf("persist reference image: %w", err)
	}

	l.faces[id] = encoding
	return nil
}

// Remove deletes the persisted image and the in-memory entry
func (l *Local) Remove(ctx context.Context, scope, id string) error {
	if !validID(id) {
		return domain.ErrValidationFailed.WithError(fmt.Errorf("invalid face id %q", id))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.faces[id]; !ok {
		return domain.ErrFaceNotFound
	}

	path := filepath.Join(l.dir, id+".jpg")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete reference image: %w", err)
	}

	delete(l.faces, id)
	return nil
}

// List returns the registered identifiers in sorted order
func (l *Local) List(ctx context.Context, scope string) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, 0, len(l.faces))
	for id := range l.faces {
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids, nil
}

// isPicture reports whether the filename carries a supported image extension
func isPicture(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// fileStem strips the extension from a filename
func fileStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// validID rejects identifiers that would resolve outside the faces directory
// once turned into a filename
func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return id == filepath.Base(id)
}

var _ Mutable = (*Local)(nil)
