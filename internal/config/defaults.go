package config

// DefaultConfig returns the built-in configuration.
// The pipeline values are the bounds observed across the supported export
// convention; see the Pipeline field docs for what each one means.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Pipeline: Pipeline{
			IndexScanPages:     10,
			MinStartPage:       1,
			MaxStartPage:       500,
			MinTitleLength:     5,
			MinTitleAlphaRatio: 0.10,
			MetadataScanLines:  20,
			MaxArticleChars:    50000,
			Workers:            0,
		},
	}
}
