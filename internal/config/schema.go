package config

// Config is the root configuration for clipper.
type Config struct {
	LogLevel string   `mapstructure:"log_level" yaml:"log_level"`
	Pipeline Pipeline `mapstructure:"pipeline" yaml:"pipeline"`
}

// Pipeline holds the tuning values for the reconstruction pipeline.
//
// These encode observed conventions of the export producer rather than
// hard domain limits, so they are configuration instead of constants:
// a different document provider may need different bounds.
type Pipeline struct {
	// IndexScanPages is how many pages from the front of the document are
	// searched for an index (table of contents) listing.
	IndexScanPages int `mapstructure:"index_scan_pages" yaml:"index_scan_pages"`

	// MinStartPage and MaxStartPage bound accepted index page numbers as an
	// open interval. Numbers at or outside the bounds are treated as
	// incidental (years, phone numbers) rather than page references.
	MinStartPage int `mapstructure:"min_start_page" yaml:"min_start_page"`
	MaxStartPage int `mapstructure:"max_start_page" yaml:"max_start_page"`

	// MinTitleLength is the minimum cleaned title length for an index entry.
	MinTitleLength int `mapstructure:"min_title_length" yaml:"min_title_length"`

	// MinTitleAlphaRatio is the minimum fraction of alphabetic characters a
	// cleaned title must contain.
	MinTitleAlphaRatio float64 `mapstructure:"min_title_alpha_ratio" yaml:"min_title_alpha_ratio"`

	// MetadataScanLines is how many leading non-empty lines of an article
	// are searched for the word-count marker.
	MetadataScanLines int `mapstructure:"metadata_scan_lines" yaml:"metadata_scan_lines"`

	// MaxArticleChars is the size ceiling above which a reconstructed
	// article is assumed to be a span miscalculation and discarded.
	MaxArticleChars int `mapstructure:"max_article_chars" yaml:"max_article_chars"`

	// Workers bounds per-article parallelism. Zero means runtime.NumCPU.
	Workers int `mapstructure:"workers" yaml:"workers"`
}
