package rundir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"finetrain/internal/services"
)

const timestampLayout = "20060102_150405"

// Allocator produces unique training output directories.
type Allocator struct {
	tokens func() string
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithTokenSource overrides the random suffix generator (primarily for tests).
func WithTokenSource(fn func() string) Option {
	return func(a *Allocator) {
		if fn != nil {
			a.tokens = fn
		}
	}
}

// New constructs an Allocator with a UUID-derived token source.
func New(opts ...Option) *Allocator {
	a := &Allocator{tokens: randomToken}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Allocate creates and returns <base>/train_<timestamp>_<token>. Parents are
// created as needed; an already-existing leaf fails rather than being reused.
func (a *Allocator) Allocate(base string, now time.Time) (string, error) {
	if base == "" {
		return "", services.Wrap(services.ErrValidation, "allocate", "output dir", "base directory required", nil)
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", services.Wrap(services.ErrIO, "allocate", "output dir", fmt.Sprintf("create base %s", base), err)
	}

	// Serialize allocators racing on the same base directory.
	lock := flock.New(filepath.Join(base, ".alloc.lock"))
	if err := lock.Lock(); err != nil {
		return "", services.Wrap(services.ErrIO, "allocate", "output dir", "acquire allocation lock", err)
	}
	defer func() { _ = lock.Unlock() }()

	name := fmt.Sprintf("train_%s_%s", now.Format(timestampLayout), a.tokens())
	path := filepath.Join(base, name)
	if err := os.Mkdir(path, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", services.Wrap(services.ErrIO, "allocate", "output dir", fmt.Sprintf("run directory %s already exists", path), nil)
		}
		return "", services.Wrap(services.ErrIO, "allocate", "output dir", fmt.Sprintf("create run directory %s", path), err)
	}
	return path, nil
}

func randomToken() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:3])
}
