/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pipeline

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokengen/fs"
	"bennypowers.dev/tokengen/internal/logger"
)

// artifact is a rendered output waiting to be written.
type artifact struct {
	Path string
	Data []byte
}

// stagedPath is the sibling temp file an artifact is written to before
// being renamed into place.
func stagedPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
}

// writeAll stages every artifact, then renames them into place. A staging
// failure removes what was staged and leaves existing artifacts untouched.
func writeAll(filesystem fs.FileSystem, artifacts []artifact) error {
	var staged []string
	cleanup := func() {
		for _, path := range staged {
			if err := filesystem.Remove(path); err != nil {
				logger.Debug("failed to remove %s: %v", path, err)
			}
		}
	}

	for _, a := range artifacts {
		if err := filesystem.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
			cleanup()
			return fmt.Errorf("failed to create directory for %s: %w", a.Path, err)
		}
		// A failed write may leave a partial file behind, so it is
		// tracked before the error is checked.
		tmp := stagedPath(a.Path)
		staged = append(staged, tmp)
		if err := filesystem.WriteFile(tmp, a.Data, 0o644); err != nil {
			cleanup()
			return fmt.Errorf("failed to write %s: %w", a.Path, err)
		}
	}

	for i, a := range artifacts {
		if err := filesystem.Rename(staged[i], a.Path); err != nil {
			staged = staged[i:]
			cleanup()
			return fmt.Errorf("failed to replace %s: %w", a.Path, err)
		}
	}
	return nil
}
