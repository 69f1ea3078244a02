package infrastructure

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// FileCache is a string key-value store with one file per key. Writes go
// through a temporary file and a rename, so readers never see a partial
// value.
type FileCache struct {
	dir string
}

func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

// UserCacheDir is the cache directory of one user under the data dir.
func UserCacheDir(dataDir, user string) string {
	return filepath.Join(dataDir, "cache", url.PathEscape(user))
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, url.PathEscape(key))
}

func (c *FileCache) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (c *FileCache) Set(key, value string) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path(key))
}

func (c *FileCache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
