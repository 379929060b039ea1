// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proceedings

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/proceedings-engine/pkg/types"
)

// Result is the outcome of one extraction run.
type Result struct {
	// Records are the committed summaries in commit order.
	Records []types.PaperSummary

	// Stats counts lines, page numbers, boundaries, and commits.
	Stats Stats
}

// OptionsFromConfig builds Machine options from the extraction config.
func OptionsFromConfig(cfg types.ExtractionConfig, trace io.Writer) (Options, error) {
	policy, err := ParsePagePolicy(cfg.PagePolicy)
	if err != nil {
		return Options{}, err
	}
	return Options{Policy: policy, DropFinal: cfg.DropFinal, Trace: trace}, nil
}

// Extract streams the proceedings text from r through a new Machine, one
// line at a time, and returns the committed records. The run stops early
// only if ctx is cancelled or reading fails.
func Extract(ctx context.Context, reg *TitleRegistry, r io.Reader, opts Options) (*Result, error) {
	m := NewMachine(reg, opts)
	sc := newLineScanner(r)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		m.Feed(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading proceedings text: %w", err)
	}
	m.Finish()

	return &Result{Records: m.Store().All(), Stats: m.Stats()}, nil
}

// ExtractFiles loads the title list and proceedings text named in cfg and
// runs Extract. The registry is returned alongside the result so callers
// can look up positions of the committed titles.
func ExtractFiles(ctx context.Context, cfg types.ExtractionConfig, trace io.Writer) (*Result, *TitleRegistry, error) {
	opts, err := OptionsFromConfig(cfg, trace)
	if err != nil {
		return nil, nil, err
	}

	reg, err := LoadRegistryFile(cfg.TitlesFile)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(cfg.ProceedingsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening proceedings text: %w", err)
	}
	defer f.Close()

	res, err := Extract(ctx, reg, f, opts)
	if err != nil {
		return nil, nil, err
	}
	return res, reg, nil
}
