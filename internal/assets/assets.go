// Package assets holds the named images and fonts a game looks up while running.
package assets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/gamestack/internal/graphics"
)

// ErrNotFound is returned when no asset of the requested kind has the name.
var ErrNotFound = errors.New("asset not found")

// Table maps names to loaded images and fonts. Images and fonts live in
// separate namespaces. It is filled at startup and only read by the loop, so
// it carries no lock.
type Table struct {
	images map[string]*graphics.Image
	fonts  map[string]*graphics.Font
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		images: make(map[string]*graphics.Image),
		fonts:  make(map[string]*graphics.Font),
	}
}

// AddImage stores img under name, replacing any previous image.
func (t *Table) AddImage(name string, img *graphics.Image) {
	t.images[name] = img
}

// Image returns the image stored under name.
func (t *Table) Image(name string) (*graphics.Image, error) {
	img, ok := t.images[name]
	if !ok {
		return nil, fmt.Errorf("image %q: %w", name, ErrNotFound)
	}
	return img, nil
}

// AddFont stores f under name. A different font already stored under name
// is closed.
func (t *Table) AddFont(name string, f *graphics.Font) {
	if old, ok := t.fonts[name]; ok && old != f {
		old.Close()
	}
	t.fonts[name] = f
}

// Font returns the font stored under name.
func (t *Table) Font(name string) (*graphics.Font, error) {
	f, ok := t.fonts[name]
	if !ok {
		return nil, fmt.Errorf("font %q: %w", name, ErrNotFound)
	}
	return f, nil
}

// ImageNames returns the image names in sorted order.
func (t *Table) ImageNames() []string {
	return sortedKeys(t.images)
}

// FontNames returns the font names in sorted order.
func (t *Table) FontNames() []string {
	return sortedKeys(t.fonts)
}

// Close releases the fonts. Images hold only pixel memory.
func (t *Table) Close() {
	for _, f := range t.fonts {
		f.Close()
	}
	t.images = make(map[string]*graphics.Image)
	t.fonts = make(map[string]*graphics.Font)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
