package metadata

import (
	"testing"

	"github.com/jackzampolin/clipper/internal/config"
)

func defaultCfg() config.Pipeline {
	return config.DefaultConfig().Pipeline
}

func TestExtract(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		text := "1,204 words\n1 September 2025\nABC News\nBody of the article follows."

		md := Extract(text, "Some Title", defaultCfg())
		if md.WordCount != 1204 {
			t.Errorf("expected word count 1204, got %d", md.WordCount)
		}
		if md.PublishDate != "2025-09-01" {
			t.Errorf("expected publish date 2025-09-01, got %q", md.PublishDate)
		}
		if md.Source != "ABC News" {
			t.Errorf("expected source ABC News, got %q", md.Source)
		}
		if md.Author != "" {
			t.Errorf("expected no author, got %q", md.Author)
		}
	})

	t.Run("skips time-of-day line before source", func(t *testing.T) {
		text := "1,204 words\n1 September 2025\n04:37 PM\nABC News\nBody."

		md := Extract(text, "Some Title", defaultCfg())
		if md.Source != "ABC News" {
			t.Errorf("expected source ABC News, got %q", md.Source)
		}
	})

	t.Run("recovers author from preceding line", func(t *testing.T) {
		text := "Jane Smith\n842 words\n2 March 2024\nHarbor Times\nBody."

		md := Extract(text, "Harbor Vote Delayed", defaultCfg())
		if md.Author != "Jane Smith" {
			t.Errorf("expected author Jane Smith, got %q", md.Author)
		}
	})

	t.Run("author pipe suffix is dropped", func(t *testing.T) {
		text := "Jane Smith | Staff Reporter\n842 words\n2 March 2024\nHarbor Times\nBody."

		md := Extract(text, "Harbor Vote Delayed", defaultCfg())
		if md.Author != "Jane Smith" {
			t.Errorf("expected author Jane Smith, got %q", md.Author)
		}
	})

	t.Run("first marker wins", func(t *testing.T) {
		text := "100 words\n5 May 2020\nFirst Source\n200 words\n6 June 2021\nSecond Source"

		md := Extract(text, "", defaultCfg())
		if md.WordCount != 100 {
			t.Errorf("expected word count from first marker, got %d", md.WordCount)
		}
		if md.Source != "First Source" {
			t.Errorf("expected First Source, got %q", md.Source)
		}
	})

	t.Run("no marker leaves all fields unset", func(t *testing.T) {
		text := "An article without any marker lines.\nJust prose."

		md := Extract(text, "", defaultCfg())
		if md != (Metadata{}) {
			t.Errorf("expected zero metadata, got %+v", md)
		}
	})

	t.Run("marker outside scan window is ignored", func(t *testing.T) {
		cfg := defaultCfg()
		cfg.MetadataScanLines = 2

		text := "line one\nline two\n300 words\n1 May 2022\nSome Source"
		md := Extract(text, "", cfg)
		if md.WordCount != 0 {
			t.Errorf("expected marker beyond window to be ignored, got %+v", md)
		}
	})

	t.Run("blank lines do not shift positions", func(t *testing.T) {
		text := "Jane Smith\n\n842 words\n\n2 March 2024\n\nHarbor Times"

		md := Extract(text, "Other Title", defaultCfg())
		if md.Author != "Jane Smith" || md.PublishDate != "2024-03-02" || md.Source != "Harbor Times" {
			t.Errorf("unexpected metadata: %+v", md)
		}
	})

	t.Run("invalid source candidate left unset", func(t *testing.T) {
		text := "842 words\n2 March 2024\n12345\nBody."

		md := Extract(text, "", defaultCfg())
		if md.Source != "" {
			t.Errorf("expected no source for numeric candidate, got %q", md.Source)
		}
	})
}

func TestValidSource(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"ABC News", true},
		{"The Gazette", true},
		// Non-ASCII letters count as letters.
		{"Süddeutsche Zeitung", true},
		{"Le Monde", true},
		// Too short.
		{"ab", false},
		{"a1", false},
		// Purely numeric.
		{"12345", false},
		// Time of day.
		{"04:37 PM", false},
		{"4:37", false},
		// Fewer than two letters.
		{"x9 8 7", false},
	}
	for _, tc := range cases {
		if got := ValidSource(tc.in); got != tc.want {
			t.Errorf("ValidSource(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAcceptAuthor(t *testing.T) {
	t.Run("rejects empty", func(t *testing.T) {
		if _, ok := AcceptAuthor("", "Title"); ok {
			t.Error("expected rejection")
		}
	})

	t.Run("rejects single word", func(t *testing.T) {
		if _, ok := AcceptAuthor("Reuters", "Title"); ok {
			t.Error("expected rejection")
		}
	})

	t.Run("rejects title match", func(t *testing.T) {
		if _, ok := AcceptAuthor("Harbor Vote Delayed", "Harbor Vote Delayed"); ok {
			t.Error("expected rejection")
		}
	})

	t.Run("rejects source-like candidates", func(t *testing.T) {
		if _, ok := AcceptAuthor("Associated Press Staff Writers", "Title"); ok {
			t.Error("expected rejection")
		}
	})

	t.Run("keeps two-word byline containing Press", func(t *testing.T) {
		author, ok := AcceptAuthor("Bill Press", "Title")
		if !ok || author != "Bill Press" {
			t.Errorf("expected Bill Press accepted, got %q %v", author, ok)
		}
	})

	t.Run("pipe prefix re-checked for single word", func(t *testing.T) {
		if _, ok := AcceptAuthor("Reuters | World Desk", "Title"); ok {
			t.Error("expected rejection of single-word pipe prefix")
		}
	})
}

func TestSourceLike(t *testing.T) {
	if SourceLike("United Press International") != true {
		t.Error("expected source-like")
	}
	if SourceLike("Bill Press") {
		t.Error("two words should not be source-like")
	}
	if SourceLike("Pressing Matters For Everyone") {
		t.Error("Press must match as a whole word")
	}
}
