package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/clipper/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestIngest(t *testing.T) {
	cfg := config.DefaultConfig().Pipeline

	t.Run("single part export", func(t *testing.T) {
		dir := t.TempDir()
		doc := "Page 1 of 2 © 2025 NewsBank. All rights reserved.\nHarbor Vote Delayed Again .......... 2\nPage 2 of 2 © 2025 NewsBank. All rights reserved.\nPat Doe | City Desk\n842 words\n1 September 2025\nABC News\nBody prose.\n"
		path := writeFile(t, dir, "harbor-digest.txt", doc)

		res, err := Ingest(context.Background(), Request{Paths: []string{path}, Config: cfg})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if res.BundleID == "" {
			t.Error("expected a bundle ID")
		}
		if res.Title != "harbor-digest" {
			t.Errorf("expected title derived from filename, got %q", res.Title)
		}
		if len(res.Articles) != 1 {
			t.Fatalf("expected 1 article, got %d", len(res.Articles))
		}
		if res.Articles[0].Source != "ABC News" {
			t.Errorf("expected source ABC News, got %q", res.Articles[0].Source)
		}
		if res.Articles[0].Author != "Pat Doe" {
			t.Errorf("expected author Pat Doe, got %q", res.Articles[0].Author)
		}
	})

	t.Run("multi-part exports are ordered by suffix", func(t *testing.T) {
		dir := t.TempDir()
		// Written out of order on purpose.
		p2 := writeFile(t, dir, "bundle-2.txt", "Page 2 of 2\nsecond page prose\n")
		p1 := writeFile(t, dir, "bundle-1.txt", "Page 1 of 2\nOrdered Feature Story .......... 2\n")

		res, err := Ingest(context.Background(), Request{Paths: []string{p2, p1}, Config: cfg})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if res.Title != "bundle" {
			t.Errorf("expected numeric suffix trimmed from title, got %q", res.Title)
		}
		if res.PagesSegmented != 2 {
			t.Errorf("expected 2 pages after reordering parts, got %d", res.PagesSegmented)
		}
		if len(res.Articles) != 1 {
			t.Fatalf("expected 1 article, got %d", len(res.Articles))
		}
	})

	t.Run("explicit title wins", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "whatever.txt", "plain text")

		res, err := Ingest(context.Background(), Request{Paths: []string{path}, Title: "March Clippings", Config: cfg})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Title != "March Clippings" {
			t.Errorf("expected explicit title kept, got %q", res.Title)
		}
	})

	t.Run("no paths is an error", func(t *testing.T) {
		if _, err := Ingest(context.Background(), Request{Config: cfg}); err == nil {
			t.Error("expected error for empty path list")
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		req := Request{Paths: []string{"/nonexistent/bundle.txt"}, Config: cfg}
		if _, err := Ingest(context.Background(), req); err == nil {
			t.Error("expected error for missing export")
		}
	})
}

func TestSortPartsByNumber(t *testing.T) {
	got := sortPartsByNumber([]string{"b-2.txt", "b-10.txt", "b-1.txt"})
	want := []string{"b-1.txt", "b-2.txt", "b-10.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"harbor-digest.txt", "harbor-digest"},
		{"/some/dir/harbor-digest-1.txt", "harbor-digest"},
		{"march.txt", "march"},
	}
	for _, tc := range cases {
		if got := deriveTitle(tc.in); got != tc.want {
			t.Errorf("deriveTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
