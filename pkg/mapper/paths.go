package mapper

import (
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultPathWidth is the display width above which ShortenPath elides.
const DefaultPathWidth = 60

// RelPath returns p relative to base when p lies under base. Other paths,
// and every path when base is empty, are returned unchanged.
func RelPath(base, p string) string {
	if base == "" || !filepath.IsAbs(p) {
		return filepath.ToSlash(p)
	}
	rel, err := filepath.Rel(base, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// ShortenPath keeps the first and last segments of a path wider than max
// display columns: "resources/.../Widget.tsx".
func ShortenPath(p string, max int) string {
	if runewidth.StringWidth(p) <= max {
		return p
	}
	parts := strings.Split(p, "/")
	if len(parts) <= 2 {
		return p
	}
	return parts[0] + "/.../" + parts[len(parts)-1]
}
