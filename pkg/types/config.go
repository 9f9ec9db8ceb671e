package types

// ConvertConfig holds settings for the convert stage.
type ConvertConfig struct {
	// OutDir is the directory for generated workbooks (default "manifests/out").
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// RunDate is the delivery date stamped into every row (DD-MM-YYYY).
	// It is supplied by the operator, never derived from the manifest.
	RunDate string `json:"run_date" yaml:"run_date"`

	// ProfilePath points to a YAML layout profile. Empty selects the
	// built-in profile for the standard manifests.
	ProfilePath string `json:"profile_path,omitempty" yaml:"profile_path,omitempty"`

	// Combined also writes a single workbook containing all documents.
	Combined bool `json:"combined" yaml:"combined"`

	// Bundle also writes a zip archive of the generated workbooks.
	Bundle bool `json:"bundle" yaml:"bundle"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database (default ".rutelister").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
