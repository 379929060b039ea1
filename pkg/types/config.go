package types

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// TitlesFile is the ordered title list, one title per line.
	TitlesFile string `json:"titles_file" yaml:"titles_file"`

	// ProceedingsFile is the plain-text dump of the proceedings volume.
	ProceedingsFile string `json:"proceedings_file" yaml:"proceedings_file"`

	// PagePolicy selects the page-number adjacency check: "strict"
	// (previous+1 only, default) or "lenient" (also accepts smaller numbers).
	PagePolicy string `json:"page_policy" yaml:"page_policy"`

	// DropFinal discards the record still in progress at end of input
	// instead of committing it.
	DropFinal bool `json:"drop_final" yaml:"drop_final"`

	// Output is the file the extracted records are written to. Empty
	// writes to stdout.
	Output string `json:"output" yaml:"output"`

	// Format selects the output encoding: yaml or json.
	Format string `json:"format" yaml:"format"`
}

// TitlesConfig holds settings for deriving the title list from a
// table-of-contents page.
type TitlesConfig struct {
	// ContentsFile is the plain-text table-of-contents page.
	ContentsFile string `json:"contents_file" yaml:"contents_file"`

	// Output is the title list to write. Empty writes to stdout.
	Output string `json:"output" yaml:"output"`
}

// ConversionConfig holds settings for the PDF-to-text stage.
type ConversionConfig struct {
	// OutputDir receives one <name>.txt per converted PDF.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// CatalogConfig holds settings for the catalog stage.
type CatalogConfig struct {
	// CatalogDir is the base directory for the catalog (contains index/).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
