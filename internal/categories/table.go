package categories

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// Category is a named bucket of file extensions sharing a destination
// subfolder.
type Category struct {
	Name       string
	Extensions []string
}

// Table is an ordered category lookup, immutable after construction. When an
// extension appears in more than one category, the first stored category
// wins.
type Table struct {
	categories []Category
	lookup     []map[string]struct{}
}

// NewTable builds a table from the given categories, preserving their order.
// Extensions are case-folded once here so lookups are case-insensitive.
func NewTable(cats []Category) *Table {
	t := &Table{
		categories: make([]Category, len(cats)),
		lookup:     make([]map[string]struct{}, len(cats)),
	}
	copy(t.categories, cats)
	for i, cat := range cats {
		set := make(map[string]struct{}, len(cat.Extensions))
		for _, ext := range cat.Extensions {
			set[foldExtension(ext)] = struct{}{}
		}
		t.lookup[i] = set
	}
	return t
}

// Categories returns the stored categories in lookup order.
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// Len returns the number of categories.
func (t *Table) Len() int { return len(t.categories) }

// Classify maps a filename to the first category whose extension set contains
// the file's extension. ok is false when the file has no extension or the
// extension matches no category.
func (t *Table) Classify(filename string) (category string, ok bool) {
	ext, ok := ExtensionOf(filename)
	if !ok {
		return "", false
	}
	for i, cat := range t.categories {
		if _, hit := t.lookup[i][ext]; hit {
			return cat.Name, true
		}
	}
	return "", false
}

// ExtensionOf derives the lowercase extension of a filename: everything from
// the last period of the base name to its end. Leading periods are part of
// the name (".bashrc" has no extension), and a lone trailing period does not
// count either.
func ExtensionOf(filename string) (string, bool) {
	base := filepath.Base(filename)
	stripped := strings.TrimLeft(base, ".")
	idx := strings.LastIndex(stripped, ".")
	if idx < 0 {
		return "", false
	}
	ext := stripped[idx:]
	if ext == "." {
		return "", false
	}
	return foldExtension(ext), true
}

func foldExtension(ext string) string {
	return cases.Fold().String(strings.TrimSpace(ext))
}
