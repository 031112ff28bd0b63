// Package selector collects the user's choices for a run: which catalog
// entries to fetch and where the output should go. The orchestrator depends
// only on the Selector interface, never on how choices are rendered.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"standex/pkg/catalog"
	"standex/pkg/writer"
)

// ErrCancelled is returned when the user backs out of a prompt. The
// orchestrator treats it like an empty selection: a neutral end of the run,
// not a failure.
var ErrCancelled = errors.New("selection cancelled")

// Output is the user's choice of destination for combined documents.
type Output struct {
	Mode       writer.Mode
	TargetPath string // ad-hoc save path; only set for a single-entry save
}

// Selector collects the keys to process and the output destination.
// An empty key slice with a nil error means "no selection made".
type Selector interface {
	SelectEntries(entries []catalog.Entry) ([]string, error)
	SelectOutput(selected []string) (Output, error)
}

// Static is the non-interactive Selector: keys come from the command line and
// the output choice from flags. Keys are returned in the order given.
type Static struct {
	Keys []string
	Out  Output
}

// SelectEntries validates Keys against the catalog and returns them in the
// order they were supplied. An unknown key is an error, not a silent skip.
func (s Static) SelectEntries(entries []catalog.Entry) ([]string, error) {
	known := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		known[e.Key] = struct{}{}
	}

	out := make([]string, 0, len(s.Keys))
	seen := make(map[string]struct{}, len(s.Keys))
	for _, k := range s.Keys {
		if _, ok := known[k]; !ok {
			valid := make([]string, len(entries))
			for i, e := range entries {
				valid[i] = e.Key
			}
			return nil, fmt.Errorf("unknown standard %q (valid: %s)", k, strings.Join(valid, ", "))
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out, nil
}

// SelectOutput returns the flag-driven output choice.
func (s Static) SelectOutput([]string) (Output, error) {
	return s.Out, nil
}
