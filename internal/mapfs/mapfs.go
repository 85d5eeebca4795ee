/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests.
package mapfs

import (
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// epoch is the modification time of every file, so snapshots compare equal.
var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// MapFileSystem is a concurrency-safe FileSystem over fstest.MapFS.
// Paths are absolute; directories are explicit ModeDir entries.
type MapFileSystem struct {
	mu    sync.RWMutex
	files fstest.MapFS
}

// New returns an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{files: make(fstest.MapFS)}
}

// AddFile writes content to p, creating parent directories.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := clean(p)
	m.mkdirLocked(path.Dir(key))
	m.files[key] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: epoch}
}

// Snapshot returns the content of every regular file keyed by absolute path.
func (m *MapFileSystem) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string)
	for key, f := range m.files {
		if !f.Mode.IsDir() {
			out["/"+key] = string(f.Data)
		}
	}
	return out
}

// WriteFile implements fs.FileSystem. The parent directory must exist.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := clean(name)
	if !m.isDirLocked(path.Dir(key)) {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if f, ok := m.files[key]; ok && f.Mode.IsDir() {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	m.files[key] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm, ModTime: epoch}
	return nil
}

// ReadFile implements fs.FileSystem.
func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, clean(name))
}

// Remove implements fs.FileSystem.
func (m *MapFileSystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := clean(name)
	if _, ok := m.files[key]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, key)
	return nil
}

// Rename implements fs.FileSystem for regular files.
func (m *MapFileSystem) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	from, to := clean(oldpath), clean(newpath)
	f, ok := m.files[from]
	if !ok || f.Mode.IsDir() {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	if !m.isDirLocked(path.Dir(to)) {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	m.files[to] = f
	delete(m.files, from)
	return nil
}

// MkdirAll implements fs.FileSystem.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := clean(p)
	for dir := key; dir != "."; dir = path.Dir(dir) {
		if f, ok := m.files[dir]; ok && !f.Mode.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
		}
	}
	m.mkdirLocked(key)
	return nil
}

// Stat implements fs.FileSystem.
func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, clean(name))
}

// Exists implements fs.FileSystem.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := clean(p)
	_, ok := m.files[key]
	return ok || key == "."
}

// ReadDir implements fs.FileSystem.
func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadDir(m.files, clean(name))
}

// Open implements fs.FS.
func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(clean(name))
}

func (m *MapFileSystem) isDirLocked(key string) bool {
	if key == "." {
		return true
	}
	f, ok := m.files[key]
	return ok && f.Mode.IsDir()
}

func (m *MapFileSystem) mkdirLocked(key string) {
	for dir := key; dir != "."; dir = path.Dir(dir) {
		if _, ok := m.files[dir]; ok {
			continue
		}
		m.files[dir] = &fstest.MapFile{Mode: fs.ModeDir | 0755, ModTime: epoch}
	}
}

// clean maps an absolute or relative path to an fs.FS key.
func clean(p string) string {
	key := strings.TrimPrefix(path.Clean("/"+p), "/")
	if key == "" {
		return "."
	}
	return key
}
