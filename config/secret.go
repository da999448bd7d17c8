/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"bennypowers.dev/colgen/fs"
)

// TokenVar is the variable holding the GitHub token for the storage repo.
const TokenVar = "COLGEN_TOKEN"

// RCFiles are the shell startup files searched for TokenVar, in order.
var RCFiles = []string{".zshrc", ".bashrc", ".bash_profile"}

// ErrTokenNotFound indicates no COLGEN_TOKEN assignment in any rc file.
var ErrTokenNotFound = errors.New("no valid 'COLGEN_TOKEN' found in your zshrc or bash config file")

// LookupToken returns the first COLGEN_TOKEN assignment found in the rc
// files under home. Lines are parsed as dotenv statements, so "export" and
// quoting are accepted and commented-out assignments are skipped.
func LookupToken(filesystem fs.FileSystem, home string) (string, error) {
	for _, name := range RCFiles {
		data, err := filesystem.ReadFile(filepath.Join(home, name))
		if err != nil {
			continue
		}
		for line := range strings.SplitSeq(string(data), "\n") {
			if !strings.Contains(line, TokenVar) {
				continue
			}
			env, err := godotenv.Unmarshal(line)
			if err != nil {
				continue
			}
			if token := strings.TrimSpace(env[TokenVar]); token != "" {
				return token, nil
			}
		}
	}
	return "", ErrTokenNotFound
}

// MaskToken keeps the first eight characters of a token for display.
func MaskToken(token string) string {
	runes := []rune(token)
	return string(runes[:min(8, len(runes))]) + "..."
}
