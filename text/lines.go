package text

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotText is returned when file contents are not valid UTF-8.
var ErrNotText = errors.New("not valid UTF-8 text")

// Decode validates data as UTF-8 and strips a leading byte order mark.
func Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotText, err)
	}
	return string(out), nil
}

// Split breaks s into lines on "\n".
func Split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Join is the inverse of Split: lines joined by "\n" with a single trailing
// newline.
func Join(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

// BOM is the UTF-8 byte order mark.
const BOM = "\ufeff"

// ReadFile reads and decodes a file into lines.
func ReadFile(path string) ([]string, error) {
	lines, _, err := ReadDocument(path)
	return lines, err
}

// ReadDocument is ReadFile for a file that will be written back: it also
// reports whether the file began with a byte order mark.
func ReadDocument(path string) (lines []string, bom bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", path, err)
	}
	return Split(s), strings.HasPrefix(string(data), BOM), nil
}

// IsBlank reports whether a line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
