/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for tokengen.
package testutil

import (
	"flag"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokengen/internal/mapfs"
)

var update = flag.Bool("update", false, "rewrite golden files with the generated output")

// testdataPath returns the first existing candidate for rel under a
// testdata directory in the package or one of its parents.
func testdataPath(rel string) (string, bool) {
	for _, dir := range []string{"testdata", "../testdata", "../../testdata"} {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return filepath.Join("testdata", rel), false
}

// NewFixtureFS copies the fixture directory into an in-memory filesystem,
// rooted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	dir, ok := testdataPath(fixtureDir)
	if !ok {
		t.Fatalf("fixture directory %s not found", fixtureDir)
	}

	mfs := mapfs.New()
	err := iofs.WalkDir(os.DirFS(dir), ".", func(rel string, d iofs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content), 0644)
		return nil
	})
	require.NoError(t, err, "loading fixtures from %s", fixtureDir)
	return mfs
}

// AssertGolden compares actual against the golden file. With -update the
// golden file is rewritten first.
func AssertGolden(t *testing.T, golden string, actual []byte) {
	t.Helper()

	path, _ := testdataPath(golden)
	if *update {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, actual, 0644))
		t.Logf("updated golden file %s", path)
	}

	expected, err := os.ReadFile(path)
	require.NoError(t, err, "reading golden file %s", golden)
	assert.Equal(t, string(expected), string(actual), golden)
}
