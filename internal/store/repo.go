package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// EvidenceFilter narrows evidence queries beyond QueryOpts.
type EvidenceFilter struct {
	Topic      string // exact topic match when non-empty
	Trait      string // exact trait match when non-empty
	QuestionID string // exact question match when non-empty
}

// EvidenceEventData is the payload for one evidence audit log entry.
type EvidenceEventData struct {
	BatchID       string
	LearnerID     string
	Topic         string
	QuestionID    string
	Trait         string
	Combined      float64
	Correctness   float64
	Calibration   float64
	Reasoning     float64
	Misconception float64
	Markers       []string
}

// EvidenceEvent is a stored audit log entry.
type EvidenceEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	EvidenceEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendEvidence records a batch of evidence observations. Each
	// record gets its own sequence number; batch order is preserved.
	AppendEvidence(ctx context.Context, batch []EvidenceEventData) error

	// QueryEvidence returns a learner's evidence entries in sequence
	// order, oldest first.
	QueryEvidence(ctx context.Context, learnerID string, filter EvidenceFilter, opts QueryOpts) ([]*EvidenceEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}

// Profile is the stored trait state for one learner scope. An empty
// Topic marks the global profile.
type Profile struct {
	LearnerID     string
	Topic         string
	Traits        map[string]float64
	QuestionCount int
	LastUpdated   time.Time
}

// ProfileRepo manages trait profiles.
type ProfileRepo interface {
	// Load returns the profile for the given scope, or nil if the
	// learner has no stored profile there yet.
	Load(ctx context.Context, learnerID, topic string) (*Profile, error)

	// Save upserts a profile, bumping last_updated.
	Save(ctx context.Context, p *Profile) error

	// List returns all profiles for a learner, global scope first,
	// then topics alphabetically.
	List(ctx context.Context, learnerID string) ([]*Profile, error)

	// DeleteLearner removes every profile for a learner. The evidence
	// log is untouched.
	DeleteLearner(ctx context.Context, learnerID string) (int, error)
}
