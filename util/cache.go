// util/cache.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Cache stores compressed msgpack-encoded objects as files in a
// directory, named by a caller-provided key.
type Cache struct {
	Dir string
}

// DefaultCacheDir returns the directory under the user's cache directory
// used by turnpath.
func DefaultCacheDir() (string, error) {
	cd, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cd, "turnpath"), nil
}

func (c Cache) path(key string) string {
	return filepath.Join(c.Dir, key+".msgpack.zst")
}

// Store writes obj to the cache. The file is written under a temporary
// name and then renamed so that concurrent readers never see a partial
// object.
func (c Cache) Store(key string, obj any) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(c.Dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if err := WriteCompressedObject(f, obj); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), c.path(key))
}

// Retrieve decodes the object stored under key into obj, returning the
// time it was stored. An error satisfying errors.Is(err, fs.ErrNotExist)
// is returned if there's no such object.
func (c Cache) Retrieve(key string, obj any) (time.Time, error) {
	f, err := os.Open(c.path(key))
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return time.Time{}, err
	}

	return fi.ModTime(), ReadCompressedObject(f, obj)
}

// Cull removes the least recently stored objects until the total size of
// the cache is at most maxBytes.
func (c Cache) Cull(maxBytes int64) error {
	if _, err := os.Stat(c.Dir); os.IsNotExist(err) {
		return nil // Nothing to cull
	}

	type fileInfo struct {
		path    string
		size    int64
		modTime time.Time
	}
	var files []fileInfo
	var totalSize int64

	err := filepath.Walk(c.Dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, fileInfo{
				path:    path,
				size:    info.Size(),
				modTime: info.ModTime(),
			})
			totalSize += info.Size()
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Oldest first
	slices.SortFunc(files, func(a, b fileInfo) int {
		return a.modTime.Compare(b.modTime)
	})

	for len(files) > 0 && totalSize > maxBytes {
		f := files[0]
		if err := os.Remove(f.path); err == nil {
			totalSize -= f.size
		}
		files = files[1:]
	}

	return nil
}
