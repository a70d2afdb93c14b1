// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util contains utility functions for the Mute base64 tools.
package util

import (
	"fmt"
	"os"

	"github.com/frankbraun/codechain/util/file"
	"github.com/mutecomm/b64/log"
	"golang.org/x/crypto/ssh/terminal"
)

// Fatal prints err to stderr and exits the process with exit code 1.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: error: %s\n", os.Args[0], err)
	os.Exit(1)
}

// CreateDirs creates all given directories.
// Empty directory names are skipped.
func CreateDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return log.Error(err)
		}
	}
	return nil
}

// IsTerminal returns true, if the file pointer fp refers to a terminal.
func IsTerminal(fp *os.File) bool {
	return terminal.IsTerminal(int(fp.Fd()))
}

// CheckNotExists returns an error, if filename exists already.
func CheckNotExists(filename string) error {
	exists, err := file.Exists(filename)
	if err != nil {
		return log.Error(err)
	}
	if exists {
		return log.Errorf("file '%s' exists already", filename)
	}
	return nil
}
