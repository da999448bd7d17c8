/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// keepFile marks a directory in the flat map.
const keepFile = ".keep"

// MapFileSystem implements FileSystem using an in-memory fstest.MapFS.
// This is useful for testing without touching the real filesystem.
type MapFileSystem struct {
	mu         sync.RWMutex
	mapFS      fstest.MapFS
	modTime    time.Time
	failWrites map[string]error
}

// New creates a new in-memory filesystem for testing.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:      make(fstest.MapFS),
		modTime:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		failWrites: make(map[string]error),
	}
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	mfs.mapFS[p] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// FailWrite makes every later WriteFile to p return err.
func (mfs *MapFileSystem) FailWrite(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.failWrites[mfs.cleanPath(p)] = err
}

// WriteFile implements FileSystem.
func (mfs *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = mfs.cleanPath(name)

	if err, ok := mfs.failWrites[name]; ok {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}

	if err := mfs.ensureParentDirLocked(name); err != nil {
		return err
	}

	mfs.mapFS[name] = &fstest.MapFile{
		Data:    append([]byte(nil), data...),
		Mode:    perm,
		ModTime: mfs.modTime,
	}

	return nil
}

// ReadFile implements FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadFile(mfs.mapFS, mfs.cleanPath(name))
}

// MkdirAll implements FileSystem.
func (mfs *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)

	if file, exists := mfs.mapFS[p]; exists && !file.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fmt.Errorf("not a directory")}
	}

	mfs.mapFS[path.Join(p, keepFile)] = &fstest.MapFile{
		Data:    []byte(""),
		Mode:    perm.Perm(),
		ModTime: mfs.modTime,
	}

	return nil
}

// RemoveAll implements FileSystem.
func (mfs *MapFileSystem) RemoveAll(p string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	prefix := p + "/"
	for filePath := range mfs.mapFS {
		if filePath == p || strings.HasPrefix(filePath, prefix) {
			delete(mfs.mapFS, filePath)
		}
	}
	return nil
}

// Stat implements FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.Stat(mfs.mapFS, mfs.cleanPath(name))
}

// Exists implements FileSystem.
func (mfs *MapFileSystem) Exists(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p = mfs.cleanPath(p)

	if _, exists := mfs.mapFS[p]; exists {
		return true
	}

	prefix := p + "/"
	for filePath := range mfs.mapFS {
		if strings.HasPrefix(filePath, prefix) {
			return true
		}
	}

	return false
}

// ReadDir implements FileSystem.
func (mfs *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadDir(mfs.mapFS, mfs.cleanPath(name))
}

// Open implements FileSystem.
func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return mfs.mapFS.Open(mfs.cleanPath(name))
}

// Files returns the sorted absolute paths of all regular files under root.
// Directory markers are not included.
func (mfs *MapFileSystem) Files(root string) []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	root = mfs.cleanPath(root)
	var files []string
	for p := range mfs.mapFS {
		if path.Base(p) == keepFile {
			continue
		}
		if root == "" || strings.HasPrefix(p, root+"/") {
			files = append(files, "/"+p)
		}
	}
	sort.Strings(files)
	return files
}

// Dirs returns the sorted absolute paths of all directories created under root.
func (mfs *MapFileSystem) Dirs(root string) []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	root = mfs.cleanPath(root)
	var dirs []string
	for p := range mfs.mapFS {
		if path.Base(p) != keepFile {
			continue
		}
		dir := path.Dir(p)
		if root == "" || dir == root || strings.HasPrefix(dir, root+"/") {
			dirs = append(dirs, "/"+dir)
		}
	}
	sort.Strings(dirs)
	return dirs
}

func (mfs *MapFileSystem) cleanPath(p string) string {
	cleaned := path.Clean(p)
	if !path.IsAbs(cleaned) {
		cleaned = "/" + cleaned
	}
	return strings.TrimPrefix(cleaned, "/")
}

func (mfs *MapFileSystem) ensureParentDirLocked(filePath string) error {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == "" {
		return nil
	}

	if file, exists := mfs.mapFS[dir]; exists && !file.Mode.IsDir() {
		return &fs.PathError{Op: "open", Path: filePath, Err: fmt.Errorf("not a directory")}
	}

	return nil
}
