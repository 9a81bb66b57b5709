// Package books provides the reading texts for the speed-reading games.
package books

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultKey is the book used when none is configured.
const DefaultKey = "quijote"

//go:embed data/catalog.toml
var catalogTOML string

// Fragment is one passage of a book.
type Fragment struct {
	Text    string `toml:"text"`
	Chapter int    `toml:"chapter"`
	Page    int    `toml:"page"`
}

var catalog = mustDecode(catalogTOML)

func mustDecode(raw string) map[string][]Fragment {
	out := map[string][]Fragment{}
	if _, err := toml.Decode(raw, &out); err != nil {
		panic(fmt.Sprintf("failed to decode embedded catalog: %v", err))
	}
	return out
}

// Keys returns the available book keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the fragments of key. Unknown keys yield an empty slice.
func Lookup(key string) []Fragment {
	fragments, ok := catalog[key]
	if !ok {
		return []Fragment{}
	}
	out := make([]Fragment, len(fragments))
	copy(out, fragments)
	return out
}

// Text joins the fragments of key with blank lines.
func Text(key string) string {
	fragments := Lookup(key)
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		parts = append(parts, strings.TrimSpace(f.Text))
	}
	return strings.Join(parts, "\n\n")
}

// LoadFile reads a user-supplied text file, keeping non-empty lines.
func LoadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open text file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for a read-only text file.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("text file is empty")
	}
	return strings.Join(lines, "\n"), nil
}
