package evidence

import (
	"context"
	"fmt"
	"sync"

	"github.com/smehra/traitlab/internal/reasoning"
	"github.com/smehra/traitlab/internal/traits"
)

// Gatherer produces evidence records from graded responses. The analyzer
// may be slow (semantic backend), so batch gathering scores responses
// concurrently; everything else is cheap arithmetic.
type Gatherer struct {
	analyzer reasoning.Analyzer
	weights  Weights
	logger   Logger
}

// NewGatherer creates a Gatherer. The logger receives every record and
// must not be nil: the append-only evidence trail is part of the update
// contract, not an optional extra.
func NewGatherer(analyzer reasoning.Analyzer, weights Weights, logger Logger) (*Gatherer, error) {
	if analyzer == nil {
		return nil, fmt.Errorf("gatherer requires an analyzer")
	}
	if logger == nil {
		return nil, fmt.Errorf("gatherer requires an evidence logger")
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid evidence weights: %w", err)
	}
	return &Gatherer{analyzer: analyzer, weights: weights, logger: logger}, nil
}

// Gather emits one record per (response, trait) pair and appends each to
// the logger. An out-of-range combined value aborts the whole gather: it
// indicates a broken scaling constant, not a data problem.
func (g *Gatherer) Gather(ctx context.Context, resp Response, targets []traits.Trait) ([]Record, error) {
	records := make([]Record, 0, len(targets))
	for _, trait := range targets {
		rec := g.gatherOne(ctx, resp, trait)
		if err := g.checkRange(rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	for _, rec := range records {
		if err := g.logger.Append(ctx, rec); err != nil {
			return nil, fmt.Errorf("append evidence record: %w", err)
		}
	}
	return records, nil
}

// GatherBatch gathers evidence for a whole quiz submission. Responses
// are scored concurrently (the analyzer is pure and safe to parallelize)
// but records are logged in submission order so the audit trail stays
// deterministic.
func (g *Gatherer) GatherBatch(ctx context.Context, responses []Response, targetsFor func(i int) []traits.Trait) ([]Record, error) {
	type result struct {
		records []Record
		err     error
	}

	results := make([]result, len(responses))
	var wg sync.WaitGroup
	for i := range responses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			targets := targetsFor(i)
			recs := make([]Record, 0, len(targets))
			for _, trait := range targets {
				rec := g.gatherOne(ctx, responses[i], trait)
				if err := g.checkRange(rec); err != nil {
					results[i] = result{err: err}
					return
				}
				recs = append(recs, rec)
			}
			results[i] = result{records: recs}
		}(i)
	}
	wg.Wait()

	var all []Record
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		all = append(all, r.records...)
	}

	for _, rec := range all {
		if err := g.logger.Append(ctx, rec); err != nil {
			return nil, fmt.Errorf("append evidence record: %w", err)
		}
	}
	return all, nil
}

func (g *Gatherer) gatherOne(ctx context.Context, resp Response, trait traits.Trait) Record {
	w := g.weights

	rec := Record{
		QuestionID: resp.QuestionID,
		Trait:      trait,
	}

	// Correctness: the dominant signal, symmetric by construction.
	if resp.Correct {
		rec.Correctness = w.Correctness
	} else {
		rec.Correctness = -w.Correctness
	}

	// Calibration: Brier-style penalty on the confidence/correctness
	// mismatch. Zero when perfectly calibrated, most negative when the
	// learner is maximally overconfident and wrong.
	correctness01 := 0.0
	if resp.Correct {
		correctness01 = 1.0
	}
	diff := resp.Confidence - correctness01
	rec.Calibration = -(diff * diff) * w.Calibration

	// Reasoning quality, re-centered so 0.5 is neutral. Only reasoning
	// that is present can move the trait; empty text scores neutral.
	score, markers := g.analyzer.Score(ctx, resp.Reasoning, trait)
	rec.Reasoning = (2*score - 1) * w.Reasoning
	rec.Markers = markers

	// Misconception penalty: linear in detector confidence, scaled by
	// severity. Absence of misconceptions contributes zero, not a bonus.
	for _, m := range resp.Misconceptions {
		rec.Misconception -= m.Confidence * w.BasePenalty * m.Severity.Factor() * w.Misconception
	}

	rec.Combined = rec.Correctness + rec.Calibration + rec.Reasoning + rec.Misconception
	return rec
}

// checkRange enforces the evidence sanity bound.
func (g *Gatherer) checkRange(rec Record) error {
	if rec.Combined > g.weights.MaxAbs || rec.Combined < -g.weights.MaxAbs {
		return fmt.Errorf("evidence for question %s trait %s out of range: %f (bound %f)",
			rec.QuestionID, rec.Trait, rec.Combined, g.weights.MaxAbs)
	}
	return nil
}
