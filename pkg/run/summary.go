package run

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Process exit codes.
const (
	ExitOK        = 0 // at least one entry produced output, or nothing was selected
	ExitAllFailed = 1 // every selected entry failed to produce any output
)

// EntryStatus is the final state of one selected entry.
type EntryStatus int

const (
	StatusFull        EntryStatus = iota // every source fetched
	StatusPartial                        // some sources fetched, output still produced
	StatusFailed                         // no source fetched; writer never invoked
	StatusWriteFailed                    // content fetched but the destination could not be written
)

func (s EntryStatus) String() string {
	switch s {
	case StatusFull:
		return "success"
	case StatusPartial:
		return "partial"
	case StatusFailed:
		return "failed"
	case StatusWriteFailed:
		return "write failed"
	default:
		return "unknown"
	}
}

// EntryOutcome records what happened to one selected entry.
type EntryOutcome struct {
	Key           string
	Status        EntryStatus
	ProducedPath  string   // file written for this entry, if any
	FailedSources []string // source paths that could not be fetched, in fetch order
	Err           error    // write error, when Status is StatusWriteFailed
}

// Summary is the accumulated result of one run. The orchestrator owns it
// exclusively while the run is in flight; afterwards it is read-only.
type Summary struct {
	SelectedKeys []string
	Cancelled    bool
	Outcomes     []EntryOutcome
}

func newSummary(keys []string) *Summary {
	return &Summary{SelectedKeys: keys}
}

func (s *Summary) record(o EntryOutcome) {
	s.Outcomes = append(s.Outcomes, o)
}

// Succeeded counts entries that produced output, fully or partially.
func (s *Summary) Succeeded() int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == StatusFull || o.Status == StatusPartial {
			n++
		}
	}
	return n
}

// Failed counts entries that produced no output.
func (s *Summary) Failed() int {
	return len(s.Outcomes) - s.Succeeded()
}

// Produced returns the paths of all files written this run, in processing
// order.
func (s *Summary) Produced() []string {
	var paths []string
	for _, o := range s.Outcomes {
		if o.ProducedPath != "" {
			paths = append(paths, o.ProducedPath)
		}
	}
	return paths
}

// ExitCode maps the run outcome to a process exit code. A cancelled or empty
// selection is a neutral success.
func (s *Summary) ExitCode() int {
	if s.Cancelled || len(s.SelectedKeys) == 0 {
		return ExitOK
	}
	if s.Succeeded() == 0 {
		return ExitAllFailed
	}
	return ExitOK
}

var (
	tallyStyle    = lipgloss.NewStyle().Bold(true)
	producedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Report renders the end-of-run tally.
func (s *Summary) Report() string {
	if s.Cancelled || len(s.SelectedKeys) == 0 {
		return "No selection made. Nothing to do.\n"
	}
	var b strings.Builder
	b.WriteString(tallyStyle.Render(fmt.Sprintf("succeeded: %d, failed: %d", s.Succeeded(), s.Failed())))
	b.WriteString("\n")
	for _, path := range s.Produced() {
		b.WriteString(producedStyle.Render("  " + path))
		b.WriteString("\n")
	}
	return b.String()
}
