// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proceedings

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/proceedings-engine/pkg/types"
)

// Output formats for record files.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// RecordFile is the on-disk representation of an extraction run. It can be
// written once and ingested into the catalog later without re-extracting.
type RecordFile struct {
	Source    string               `json:"source" yaml:"source"`
	Titles    int                  `json:"titles" yaml:"titles"`
	Stats     Stats                `json:"stats" yaml:"stats"`
	Timestamp time.Time            `json:"timestamp" yaml:"timestamp"`
	Records   []types.PaperSummary `json:"records" yaml:"records"`
}

// NewRecordFile wraps res for writing. source names the proceedings text.
func NewRecordFile(source string, reg *TitleRegistry, res *Result) RecordFile {
	rf := RecordFile{
		Source:    source,
		Stats:     res.Stats,
		Timestamp: time.Now().UTC(),
		Records:   res.Records,
	}
	if reg != nil {
		rf.Titles = reg.Len()
	}
	return rf
}

// WriteRecordFile encodes rf to w as YAML or JSON.
func WriteRecordFile(w io.Writer, format string, rf RecordFile) error {
	switch format {
	case FormatYAML, "":
		data, err := yaml.Marshal(&rf)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rf)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// ReadRecordFile loads a record file written by WriteRecordFile. Files
// ending in .json are decoded as JSON, everything else as YAML.
func ReadRecordFile(path string) (*RecordFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record file: %w", err)
	}
	var rf RecordFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &rf)
	} else {
		err = yaml.Unmarshal(data, &rf)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing record file %s: %w", path, err)
	}
	return &rf, nil
}
