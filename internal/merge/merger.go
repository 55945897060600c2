package merge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrSourceMissing wraps the fatal case of a source directory that does
// not exist or cannot be read at all. Nothing is written when it fires.
var ErrSourceMissing = errors.New("source directory not found")

// DefaultWorkers bounds the per-file fan-out when Options.Workers is 0.
const DefaultWorkers = 4

// Options configures a single merge run.
type Options struct {
	// SourceA and SourceB are the two input directories. Both must exist.
	SourceA string
	SourceB string

	// Dest is created (with parents) if absent.
	Dest string

	Policy Policy

	// Workers bounds the number of files processed concurrently.
	// Zero means DefaultWorkers.
	Workers int

	// Verbose adds a change summary per merged file.
	Verbose bool

	// Out receives per-file progress lines. Nil discards them.
	Out io.Writer
}

// Merger merges two directories of archive files into a destination,
// one output file per name in the union of the sources. It holds no
// state between runs.
type Merger struct {
	opts Options

	mu     sync.Mutex // serializes progress lines
	report Report
}

// New returns a Merger for the given options.
func New(opts Options) *Merger {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Merger{opts: opts}
}

// fileResult is the outcome of processing one plan entry. Results are
// collected per-index and folded into the report after the group waits,
// so the counters never need locking.
type fileResult struct {
	outcome Outcome
	reason  string
}

// Run executes the merge. Per-file read problems are recorded in the
// report and skipped; a missing source directory or any write failure
// aborts the run.
func (m *Merger) Run(ctx context.Context) (*Report, error) {
	left, err := FileSet(m.opts.SourceA)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceMissing, err)
	}
	right, err := FileSet(m.opts.SourceB)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceMissing, err)
	}

	if err := os.MkdirAll(m.opts.Dest, 0o755); err != nil {
		return nil, fmt.Errorf("creating destination %s: %w", m.opts.Dest, err)
	}

	plan := Plan(left, right)
	results := make([]fileResult, len(plan))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Workers)
	for i, entry := range plan {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := m.processOne(entry)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.report = Report{}
	for i, entry := range plan {
		m.report.add(entry.Name, results[i].outcome, results[i].reason)
	}
	return &m.report, nil
}

// processOne handles a single filename. The returned error is reserved
// for write failures, which are fatal for the run; everything
// recoverable comes back as a fileResult.
func (m *Merger) processOne(entry PlanEntry) (fileResult, error) {
	switch entry.Class {
	case OnlyLeft:
		return m.copyRaw(entry.Name, m.opts.SourceA, OutcomeCopiedA, "A")
	case OnlyRight:
		return m.copyRaw(entry.Name, m.opts.SourceB, OutcomeCopiedB, "B")
	default:
		return m.mergeCommon(entry.Name)
	}
}

func (m *Merger) copyRaw(name, srcDir string, outcome Outcome, side string) (fileResult, error) {
	data, err := os.ReadFile(filepath.Join(srcDir, name))
	if err != nil {
		m.logf("skipped %s: %v", name, err)
		return fileResult{outcome: OutcomeSkipped, reason: fmt.Sprintf("unreadable: %v", err)}, nil
	}
	if err := m.writeAtomic(name, data); err != nil {
		return fileResult{}, err
	}
	m.logf("copied %s (only in %s)", name, side)
	return fileResult{outcome: outcome}, nil
}

func (m *Merger) mergeCommon(name string) (fileResult, error) {
	rawA, err := os.ReadFile(filepath.Join(m.opts.SourceA, name))
	if err != nil {
		m.logf("skipped %s: %v", name, err)
		return fileResult{outcome: OutcomeSkipped, reason: fmt.Sprintf("unreadable in A: %v", err)}, nil
	}
	rawB, err := os.ReadFile(filepath.Join(m.opts.SourceB, name))
	if err != nil {
		m.logf("skipped %s: %v", name, err)
		return fileResult{outcome: OutcomeSkipped, reason: fmt.Sprintf("unreadable in B: %v", err)}, nil
	}

	docA := ParseDocument(rawA)
	docB := ParseDocument(rawB)

	// The lossy escape hatch: if either side is not valid JSON, the
	// output is bytes(A) + "\n" + bytes(B), no merge attempted.
	if docA.Kind == KindOpaque || docB.Kind == KindOpaque {
		joined := make([]byte, 0, len(rawA)+1+len(rawB))
		joined = append(joined, rawA...)
		joined = append(joined, '\n')
		joined = append(joined, rawB...)
		if err := m.writeAtomic(name, joined); err != nil {
			return fileResult{}, err
		}
		m.logf("concatenated %s (not valid JSON)", name)
		return fileResult{outcome: OutcomeConcatenated}, nil
	}

	merged, err := MergeDocuments(docA, docB, m.opts.Policy)
	if errors.Is(err, ErrUnsupportedShape) {
		m.logf("skipped %s: %s+%s under %s policy", name, docA.Kind, docB.Kind, m.opts.Policy)
		return fileResult{
			outcome: OutcomeSkipped,
			reason:  fmt.Sprintf("%s: %s+%s", ErrUnsupportedShape, docA.Kind, docB.Kind),
		}, nil
	}
	if err != nil {
		return fileResult{}, fmt.Errorf("merging %s: %w", name, err)
	}

	encoded, err := encodeJSON(merged)
	if err != nil {
		return fileResult{}, fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := m.writeAtomic(name, encoded); err != nil {
		return fileResult{}, err
	}

	if m.opts.Verbose {
		m.logChanges(name, docA.Value(), merged)
	}
	m.logf("merged %s (%s)", name, m.opts.Policy)
	return fileResult{outcome: OutcomeMerged}, nil
}

// writeAtomic writes data to a temporary file in the destination and
// renames it into place, so an existing file is never left partially
// overwritten. Any failure here is fatal for the run.
func (m *Merger) writeAtomic(name string, data []byte) error {
	tmp, err := os.CreateTemp(m.opts.Dest, ".archivekit-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file for %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting mode on %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(m.opts.Dest, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalizing %s: %w", name, err)
	}
	return nil
}

// encodeJSON serializes a merged value with two-space indentation and
// HTML escaping off, so non-ASCII text in the archives stays readable.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Merger) logf(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fmt.Fprintf(m.opts.Out, format+"\n", args...)
}
