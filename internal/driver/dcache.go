package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"diec/internal/emit"
	"diec/internal/project"
	"diec/internal/source"
	"diec/internal/version"
)

// Current schema version; bump when CachePayload changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит скомпилированные class-файлы по ключу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedClass is one class file in a payload.
type CachedClass struct {
	Name string `msgpack:"name"`
	Data []byte `msgpack:"data"`
}

// CachePayload is what one successful unit leaves in the cache.
type CachePayload struct {
	Schema      uint16         `msgpack:"schema"`
	Path        string         `msgpack:"path"`
	ContentHash project.Digest `msgpack:"content_hash"`
	Items       []CachedClass  `msgpack:"classes"`
}

// NewCachePayload snapshots the classes built from file.
func NewCachePayload(file *source.File, classes []emit.Class) *CachePayload {
	p := &CachePayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		ContentHash: project.Digest(file.Hash),
	}
	for _, c := range classes {
		p.Items = append(p.Items, CachedClass{Name: c.Name, Data: c.Data})
	}
	return p
}

// Valid reports whether p was written by this schema for file's content.
func (p *CachePayload) Valid(file *source.File) bool {
	return p.Schema == diskCacheSchemaVersion && p.ContentHash == project.Digest(file.Hash) && len(p.Items) > 0
}

// Classes converts the payload back to emitter output.
func (p *CachePayload) Classes() []emit.Class {
	out := make([]emit.Class, len(p.Items))
	for i, c := range p.Items {
		out[i] = emit.Class{Name: c.Name, Data: c.Data}
	}
	return out
}

// CacheKey folds the source content, the class naming options and the
// compiler version into one digest.
func CacheKey(file *source.File, opts emit.Options) project.Digest {
	return project.Combine(project.Digest(file.Hash),
		[]byte(opts.Class),
		[]byte(opts.SourceFile),
		[]byte(strconv.Itoa(int(opts.Major))),
		[]byte(version.Version),
	)
}

// OpenDiskCache opens (creating if needed) a cache rooted at dir. An empty
// dir selects $XDG_CACHE_HOME/diec.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "diec")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := key.String()
	// подкаталог по первому байту, чтобы не копить тысячи файлов в одном месте
	return filepath.Join(c.dir, "units", hexKey[:2], hexKey+".mp")
}

// Put serializes payload under key, atomically.
func (c *DiskCache) Put(key project.Digest, payload *CachePayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads the payload stored under key into out.
func (c *DiskCache) Get(key project.Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll removes every cached unit.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "units"))
}
