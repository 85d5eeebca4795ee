/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the tokengen CLI.
package version

import (
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X bennypowers.dev/tokengen/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
	GitDirty  = ""
)

// build holds version data merged from ldflags and the module build info.
type build struct {
	version  string
	commit   string
	time     string
	modified bool
}

func current() build {
	b := build{
		version:  Version,
		commit:   GitCommit,
		time:     BuildTime,
		modified: GitDirty == "dirty",
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if b.version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.commit == "" {
				b.commit = s.Value
			}
		case "vcs.time":
			if b.time == "" {
				b.time = s.Value
			}
		case "vcs.modified":
			b.modified = b.modified || s.Value == "true"
		}
	}
	return b
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

// Get returns the version string, suffixed with the short commit and a
// dirty marker for development builds.
func Get() string {
	b := current()
	v := b.version
	if v == "dev" && b.commit != "" && !strings.HasSuffix(v, shortCommit(b.commit)) {
		v += "-" + shortCommit(b.commit)
	}
	if b.modified && v != "dev" {
		v += "-dirty"
	}
	return v
}

// Full returns the version with the full commit hash when known.
func Full() string {
	b := current()
	if b.commit == "" {
		return Get()
	}
	return Get() + " (commit: " + b.commit + ")"
}

// Info returns build information for machine-readable output.
func Info() map[string]string {
	b := current()
	dirty := ""
	if b.modified {
		dirty = "dirty"
	}
	return map[string]string{
		"version":   Get(),
		"gitCommit": b.commit,
		"buildTime": b.time,
		"gitDirty":  dirty,
	}
}
