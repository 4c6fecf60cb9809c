package util

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/pingcap/errors"
)

// ReadText reads the whole file at path as a string.
func ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Annotatef(err, "read input %s", path)
	}
	return string(content), nil
}

// AtomicWrite writes content to path atomically by using mv. Missing parent
// directories are created.
func AtomicWrite(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0776); err != nil {
		return errors.Trace(err)
	}
	// there's a little chance that rand.Int conflicts
	tmpFile := path + ".tmp" + strconv.Itoa(rand.Int())
	if err := os.WriteFile(tmpFile, content, 0666); err != nil {
		return errors.Trace(err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return errors.Annotatef(err, "rename %s to %s", tmpFile, path)
	}
	return nil
}

// EscapePath encodes special characters in a string to make it safe for use as
// a single file system path element.
func EscapePath(input string) string {
	if input == "" {
		return "empty-string"
	}
	var builder strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) && !strings.ContainsRune(`/\:*?"<>|.`, r) {
			builder.WriteRune(r)
			continue
		}
		builder.WriteString(fmt.Sprintf("%%%02X", r))
	}
	return builder.String()
}
