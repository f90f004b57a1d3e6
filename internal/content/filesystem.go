package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adventmirror/adventd/internal/config"
)

// filesystem implements System against the local content tree.
// Directory paths are resolved to absolute form during construction so the
// containment check compares against a stable prefix.
type filesystem struct {
	static     string
	global     string
	private    string
	challenges string
	maxSize    int64
	logger     *slog.Logger
}

// New creates a filesystem-backed content system rooted at cfg.Root.
func New(cfg *config.ContentConfig, logger *slog.Logger) (System, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	return &filesystem{
		static:     filepath.Join(root, cfg.StaticDir),
		global:     filepath.Join(root, cfg.GlobalDir),
		private:    filepath.Join(root, cfg.PrivateDir),
		challenges: filepath.Join(root, cfg.ChallengesDir),
		maxSize:    cfg.MaxDocumentSizeBytes(),
		logger:     logger.With("system", "content"),
	}, nil
}

func (f *filesystem) GlobalLeaderboard(ctx context.Context, year, day int) ([]byte, error) {
	path, err := f.resolve(f.global, dailyFileName(year, day))
	if err != nil {
		return nil, err
	}
	return f.readDocument(path)
}

func (f *filesystem) Challenge(ctx context.Context, year, day int) ([]byte, error) {
	path, err := f.resolve(f.challenges, dailyFileName(year, day))
	if err != nil {
		return nil, err
	}
	return f.readDocument(path)
}

func (f *filesystem) PrivateLeaderboardPath(year, id int) (string, error) {
	path, err := f.resolve(f.private, fmt.Sprintf("%d_%d.json", year, id))
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat export: %w", err)
	}

	return path, nil
}

func (f *filesystem) StaticPath(name string) (string, error) {
	path, err := f.resolve(f.static, name)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat asset: %w", err)
	}
	if info.IsDir() {
		return "", ErrNotFound
	}

	return path, nil
}

// dailyFileName applies the naming convention for per-day documents: the
// day is always zero-padded to two digits, the year never is.
func dailyFileName(year, day int) string {
	return fmt.Sprintf("%d_%02d.html", year, day)
}

// resolve joins name onto dir and verifies the result stays inside dir.
func (f *filesystem) resolve(dir, name string) (string, error) {
	if name == "" {
		return "", ErrInvalidPath
	}

	cleaned := filepath.Clean(name)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", ErrInvalidPath
	}

	path := filepath.Join(dir, cleaned)
	if path != dir && !strings.HasPrefix(path, dir+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}

	return path, nil
}

func (f *filesystem) readDocument(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat document: %w", err)
	}

	if info.Size() > f.maxSize {
		f.logger.Warn("document exceeds max size", "path", path, "size", info.Size())
		return nil, ErrTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read document: %w", err)
	}

	return data, nil
}
