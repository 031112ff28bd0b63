// Package run drives one fetch run: selection, per-entry fetching, combining,
// writing, and the final report. Everything is strictly sequential; entries
// are processed in selection order and sources in catalog order, which keeps
// the combined output reproducible.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"standex/pkg/catalog"
	"standex/pkg/combine"
	"standex/pkg/fetcher"
	"standex/pkg/selector"
	"standex/pkg/writer"
)

// Runner wires the pipeline together for a single invocation.
type Runner struct {
	Entries   []catalog.Entry
	Selector  selector.Selector
	Fetcher   fetcher.Fetcher
	Writer    *writer.Writer
	OutputDir string
	Out       io.Writer // progress and report lines (normally stdout)
	Logger    *zap.Logger
}

// Run executes one full run and returns its summary. An error return means
// the run itself could not proceed (prompt failure, output directory not
// creatable); fetch and write failures are captured in the summary instead.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.Out == nil {
		r.Out = os.Stdout
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}

	keys, err := r.Selector.SelectEntries(r.Entries)
	if err != nil {
		return nil, err
	}
	summary := newSummary(keys)
	if len(keys) == 0 {
		r.Logger.Info("No entries selected, ending run")
		summary.Cancelled = true
		fmt.Fprint(r.Out, summary.Report())
		return summary, nil
	}

	out, err := r.Selector.SelectOutput(keys)
	if errors.Is(err, selector.ErrCancelled) {
		r.Logger.Info("Output prompt cancelled, ending run")
		summary.Cancelled = true
		fmt.Fprint(r.Out, summary.Report())
		return summary, nil
	}
	if err != nil {
		return nil, err
	}
	if out.TargetPath != "" && len(keys) > 1 {
		return nil, fmt.Errorf("a custom output path only works with a single selection, got %d", len(keys))
	}

	if out.Mode.Saves() && out.TargetPath == "" {
		if err := r.Writer.EnsureDir(r.OutputDir); err != nil {
			return nil, err
		}
	}

	r.Logger.Info("Starting run",
		zap.Strings("keys", keys),
		zap.String("mode", out.Mode.String()))

	for _, key := range keys {
		entry, ok := catalogFind(r.Entries, key)
		if !ok {
			// Selector returned a key the catalog does not know; a defect,
			// recorded as a failed entry rather than a crash.
			r.Logger.Error("Selected key missing from catalog", zap.String("key", key))
			summary.record(EntryOutcome{Key: key, Status: StatusFailed})
			continue
		}
		summary.record(r.processEntry(ctx, entry, out))
	}

	fmt.Fprint(r.Out, summary.Report())
	return summary, nil
}

// processEntry fetches every source of one entry in order, combines whatever
// succeeded, and hands the result to the writer. A failure never escapes the
// entry.
func (r *Runner) processEntry(ctx context.Context, entry catalog.Entry, out selector.Output) EntryOutcome {
	fmt.Fprintf(r.Out, "→ %s (%d source", entry.DisplayName, len(entry.SourcePaths))
	if len(entry.SourcePaths) > 1 {
		fmt.Fprint(r.Out, "s")
	}
	fmt.Fprintln(r.Out, ")")

	outcome := EntryOutcome{Key: entry.Key}
	var parts []combine.Part
	for _, src := range entry.SourcePaths {
		content, err := r.Fetcher.Fetch(ctx, src)
		if err != nil {
			r.Logger.Warn("Source fetch failed",
				zap.String("key", entry.Key),
				zap.String("source", src),
				zap.Error(err))
			outcome.FailedSources = append(outcome.FailedSources, src)
			continue
		}
		parts = append(parts, combine.Part{Source: src, Content: content})
	}

	if len(parts) == 0 {
		outcome.Status = StatusFailed
		fmt.Fprintf(r.Out, "✗ %s: no source could be retrieved\n", entry.Key)
		return outcome
	}

	outcome.Status = StatusFull
	if len(outcome.FailedSources) > 0 {
		outcome.Status = StatusPartial
		fmt.Fprintf(r.Out, "  retrieved %d/%d sources\n",
			len(parts), len(entry.SourcePaths))
	}

	combined := combine.Join(parts)

	if out.Mode.Displays() {
		if err := r.Writer.Display(combined); err != nil {
			r.Logger.Error("Display failed", zap.String("key", entry.Key), zap.Error(err))
			if !out.Mode.Saves() {
				outcome.Status = StatusWriteFailed
				outcome.Err = err
				fmt.Fprintf(r.Out, "✗ %s: %v\n", entry.Key, err)
				return outcome
			}
		}
	}

	if out.Mode.Saves() {
		path, err := r.saveEntry(entry, out, combined)
		if err != nil {
			r.Logger.Error("Write failed", zap.String("key", entry.Key), zap.Error(err))
			outcome.Status = StatusWriteFailed
			outcome.Err = err
			fmt.Fprintf(r.Out, "✗ %s: %v\n", entry.Key, err)
			return outcome
		}
		outcome.ProducedPath = path
		fmt.Fprintf(r.Out, "✓ %s\n", path)
	} else {
		fmt.Fprintf(r.Out, "✓ %s\n", entry.Key)
	}
	return outcome
}

func (r *Runner) saveEntry(entry catalog.Entry, out selector.Output, content string) (string, error) {
	if out.TargetPath != "" {
		if err := r.Writer.SaveFile(out.TargetPath, content); err != nil {
			return "", err
		}
		return out.TargetPath, nil
	}
	return r.Writer.SaveEntry(r.OutputDir, entry.OutputName, content)
}

func catalogFind(entries []catalog.Entry, key string) (catalog.Entry, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e, true
		}
	}
	return catalog.Entry{}, false
}
