// Package evidence turns one graded quiz response into per-trait
// evidence records: signed scores fusing correctness, confidence
// calibration, reasoning quality, and misconception penalties. Records
// are immutable once created and feed both the Bayesian updater and the
// append-only audit log.
package evidence

import (
	"context"

	"github.com/smehra/traitlab/internal/traits"
)

// Severity labels a detected misconception's estimated impact.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Factor returns the penalty multiplier for the severity label.
// Unknown labels are treated as medium.
func (s Severity) Factor() float64 {
	switch s {
	case SeverityLow:
		return 0.5
	case SeverityMedium:
		return 1.0
	case SeverityHigh:
		return 1.5
	case SeverityCritical:
		return 2.0
	default:
		return 1.0
	}
}

// Misconception is one detected misconception on a response, as reported
// by the misconception-detection collaborator.
type Misconception struct {
	ID         string
	Text       string
	Confidence float64 // detector confidence in [0,1]
	Severity   Severity
}

// Response is the evidence-relevant part of one answered question.
type Response struct {
	QuestionID     string
	Correct        bool
	Confidence     float64 // learner-reported, in [0,1]
	Reasoning      string  // free text, may be empty
	Misconceptions []Misconception
}

// Record is the evidence for a single (question, trait) pair. Combined
// is the sum of the four component contributions; it is not clamped
// here; bounding happens only at the posterior update.
type Record struct {
	QuestionID string
	Trait      traits.Trait

	Combined      float64
	Correctness   float64
	Calibration   float64
	Reasoning     float64
	Misconception float64

	// Markers are the analyzer's explanation of the reasoning component.
	Markers []string
}

// Logger receives every record as it is produced. The append is the
// system's only audit trail; gathering without a logger is a defect.
type Logger interface {
	Append(ctx context.Context, rec Record) error
}

// LogBuffer is an in-memory Logger for callers that persist the batch
// themselves after the update returns.
type LogBuffer struct {
	Records []Record
}

// Append implements Logger.
func (b *LogBuffer) Append(_ context.Context, rec Record) error {
	b.Records = append(b.Records, rec)
	return nil
}
