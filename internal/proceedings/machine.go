// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proceedings

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/proceedings-engine/pkg/types"
)

// State is the field of a paper record the Machine is collecting.
type State int

const (
	StateInitial State = iota
	StatePageNumber
	StateTitle
	StateAuthors
	StateKeywords
	StateAbstract
	StateReferences
	StateWait
)

var stateNames = [...]string{
	StateInitial:    "initial",
	StatePageNumber: "page-number",
	StateTitle:      "title",
	StateAuthors:    "authors",
	StateKeywords:   "keywords",
	StateAbstract:   "abstract",
	StateReferences: "references",
	StateWait:       "wait",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Layout landmarks.
const (
	markerAbstract     = "abstract"
	markerKeywords     = "Keywords:"
	markerKeywordsFold = "keywords:"
	markerReferences   = "References"
)

// Options configures a Machine.
type Options struct {
	// Policy is the page-number adjacency policy.
	Policy PagePolicy

	// DropFinal discards the record still in progress when Finish is
	// called instead of committing it.
	DropFinal bool

	// Trace, if set, receives one status line per accepted page number,
	// boundary decision, and commit.
	Trace io.Writer
}

// Stats counts what a Machine saw during a run.
type Stats struct {
	Lines           int  `json:"lines" yaml:"lines"`
	Pages           int  `json:"pages" yaml:"pages"`
	Boundaries      int  `json:"boundaries" yaml:"boundaries"`
	FalseBoundaries int  `json:"false_boundaries" yaml:"false_boundaries"`
	Committed       int  `json:"committed" yaml:"committed"`
	Discarded       int  `json:"discarded" yaml:"discarded"`
	Duplicates      int  `json:"duplicates" yaml:"duplicates"`
	Flushed         bool `json:"flushed" yaml:"flushed"`
}

// Machine is the extraction state machine. It owns all state of one run:
// the page detector, the current and previous states, the count of papers
// seen, and the record in progress. A Machine is not safe for concurrent
// use; separate runs use separate Machines.
type Machine struct {
	reg       *TitleRegistry
	pages     *PageDetector
	store     *RecordStore
	fold      cases.Caser
	trace     io.Writer
	dropFinal bool

	state   State
	prev    State
	onPaper int
	pending types.PaperSummary
	discard bool
	stats   Stats
}

// NewMachine returns a Machine in StateInitial that validates paper
// boundaries against reg.
func NewMachine(reg *TitleRegistry, opts Options) *Machine {
	return &Machine{
		reg:       reg,
		pages:     NewPageDetector(opts.Policy),
		store:     NewRecordStore(),
		fold:      cases.Fold(),
		trace:     opts.Trace,
		dropFinal: opts.DropFinal,
	}
}

// Feed consumes one line of the proceedings text. A transition that hands
// the line to the next state re-dispatches it before Feed returns.
func (m *Machine) Feed(line string) {
	m.stats.Lines++
	again := true
	for again {
		line, again = m.step(line)
	}
}

// step handles line in the current state. It returns the line to
// re-dispatch and whether to re-dispatch it.
func (m *Machine) step(line string) (string, bool) {
	switch m.state {
	case StateInitial:
		if m.isPage(line) {
			m.enter(StatePageNumber)
		}
		return line, false

	case StatePageNumber:
		return line, m.boundary(line)

	case StateTitle:
		m.pending.Title = Trim(line)
		m.enter(StateAuthors)
		return line, false

	case StateAuthors:
		return m.authors(line)

	case StateAbstract:
		return m.abstract(line)

	case StateKeywords:
		m.pending.Keywords += line
		m.enter(StateWait)
		return line, true

	case StateReferences:
		if m.isPage(line) {
			m.enter(StatePageNumber)
			return line, false
		}
		m.pending.References = append(m.pending.References, line)
		m.awaitLandmark(line)
		return line, false

	case StateWait:
		m.awaitLandmark(line)
		return line, false
	}
	return line, false
}

// boundary validates a tentative page number: it is a paper boundary only
// if line is the next title in registry order. On success the previous
// record is committed and line is re-dispatched as the title. Otherwise the
// state held before the page number is restored and line is re-dispatched
// there as ordinary content.
func (m *Machine) boundary(line string) bool {
	title := Trim(line)
	pos, ok := m.reg.Position(title)
	if !ok || pos != m.onPaper+1 {
		m.stats.FalseBoundaries++
		m.tracef("not a boundary: %q (want position %d)\n", title, m.onPaper+1)
		m.discard = false
		m.state, m.prev = m.prev, StatePageNumber
		return true
	}

	m.stats.Boundaries++
	m.commit()
	m.onPaper++
	m.tracef("paper %d: %q\n", m.onPaper, title)
	m.enter(StateTitle)
	return true
}

func (m *Machine) authors(line string) (string, bool) {
	folded := m.fold.String(line)
	switch {
	case Trim(folded) == markerAbstract:
		m.enter(StateAbstract)
		return line, false
	case strings.Contains(folded, markerKeywordsFold):
		m.enter(StateKeywords)
		return line, true
	case m.isPage(line):
		// No abstract before the next page; drop this record unless the
		// page turns out not to be a boundary.
		m.discard = true
		m.enter(StatePageNumber)
		return line, false
	}
	m.pending.Authors = append(m.pending.Authors, line)
	return line, false
}

func (m *Machine) abstract(line string) (string, bool) {
	if i := strings.Index(line, markerKeywords); i >= 0 {
		m.pending.Abstract += line[:i]
		m.enter(StateKeywords)
		return line[i:], true
	}
	if m.isPage(line) {
		m.enter(StatePageNumber)
		return line, false
	}
	if Trim(line) == markerReferences {
		m.enter(StateReferences)
		return line, false
	}
	m.pending.Abstract += Trim(line) + " "
	return line, false
}

// awaitLandmark moves to StateReferences or StatePageNumber when line is
// the matching landmark and otherwise leaves the state unchanged.
func (m *Machine) awaitLandmark(line string) {
	if Trim(line) == markerReferences {
		if m.state != StateReferences {
			m.enter(StateReferences)
		}
		return
	}
	if m.isPage(line) {
		m.enter(StatePageNumber)
	}
}

func (m *Machine) isPage(line string) bool {
	if !m.pages.IsPageNumber(line) {
		return false
	}
	m.stats.Pages++
	n, _ := m.pages.Last()
	m.tracef("page %d\n", n)
	return true
}

func (m *Machine) enter(next State) {
	m.prev, m.state = m.state, next
}

// commit moves the record in progress into the store and resets it.
func (m *Machine) commit() {
	switch {
	case m.pending.Title == "":
	case m.discard:
		m.stats.Discarded++
		m.tracef("discarded %q (no abstract)\n", m.pending.Title)
	case m.store.Insert(m.pending):
		m.stats.Committed++
		m.tracef("committed %q (%d authors, %d references)\n",
			m.pending.Title, len(m.pending.Authors), len(m.pending.References))
	default:
		m.tracef("duplicate %q ignored\n", m.pending.Title)
	}
	m.pending = types.PaperSummary{}
	m.discard = false
}

// Finish ends the run. The record still in progress is committed unless
// the Machine was built with DropFinal, the record has no title, or it was
// abandoned at a page boundary. Finish reports whether a record was
// committed.
func (m *Machine) Finish() bool {
	if m.dropFinal {
		if m.pending.Title != "" {
			m.tracef("dropped %q at end of input\n", m.pending.Title)
		}
		m.pending = types.PaperSummary{}
		m.discard = false
		return false
	}
	before := m.stats.Committed
	m.commit()
	m.stats.Flushed = m.stats.Committed > before
	return m.stats.Flushed
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Pending returns a copy of the record in progress.
func (m *Machine) Pending() types.PaperSummary {
	return m.pending.Clone()
}

// Store returns the store committed records are written to.
func (m *Machine) Store() *RecordStore {
	return m.store
}

// Stats returns the counters for the run so far.
func (m *Machine) Stats() Stats {
	s := m.stats
	s.Duplicates = m.store.Duplicates()
	return s
}

func (m *Machine) tracef(format string, args ...any) {
	if m.trace != nil {
		fmt.Fprintf(m.trace, format, args...)
	}
}
