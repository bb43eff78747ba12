package mapper

import "testing"

func TestRelPath(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"/repo", "/repo/src/a.ts", "src/a.ts"},
		{"/repo", "/other/a.ts", "/other/a.ts"},
		{"/repo", "src/a.ts", "src/a.ts"},
		{"", "/repo/a.ts", "/repo/a.ts"},
	}
	for _, tt := range tests {
		if got := RelPath(tt.base, tt.path); got != tt.want {
			t.Errorf("RelPath(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestShortenPath(t *testing.T) {
	long := "resources/js/components/admin/settings/very/deeply/nested/Widget.tsx"
	if got := ShortenPath(long, 30); got != "resources/.../Widget.tsx" {
		t.Errorf("ShortenPath = %q", got)
	}
	if got := ShortenPath("src/a.ts", 30); got != "src/a.ts" {
		t.Errorf("short path changed: %q", got)
	}
	if got := ShortenPath("averyveryverylongdirectory/file.ts", 10); got != "averyveryverylongdirectory/file.ts" {
		t.Errorf("two-segment path changed: %q", got)
	}
}
