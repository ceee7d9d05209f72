// Package profile orchestrates a full trait update: Q-matrix mapping,
// evidence gathering, the posterior update for both the global and the
// topic scope, and persistence with the audit log.
package profile

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/smehra/traitlab/internal/estimator"
	"github.com/smehra/traitlab/internal/evidence"
	"github.com/smehra/traitlab/internal/qmatrix"
	"github.com/smehra/traitlab/internal/reasoning"
	"github.com/smehra/traitlab/internal/store"
	"github.com/smehra/traitlab/internal/traits"
)

// GradedResponse pairs a question's trait mapping inputs with the
// learner's graded answer.
type GradedResponse struct {
	Question qmatrix.Question
	Response evidence.Response
}

// ScopeResult is the outcome of one update for a single scope.
type ScopeResult struct {
	Vector      traits.Vector
	Diagnostics []estimator.Diagnostic
}

// UpdateResult is what one UpdateProfile call produced.
type UpdateResult struct {
	// BatchID groups this call's evidence records in the audit log.
	BatchID string

	Global ScopeResult
	Topic  ScopeResult

	// Records is the evidence batch both scopes were updated from.
	Records []evidence.Record
}

// Service runs trait updates against the store.
type Service struct {
	analyzer reasoning.Analyzer
	weights  evidence.Weights
	profiles store.ProfileRepo
	events   store.EventRepo

	// Updates for the same learner are serialized; different learners
	// proceed independently.
	mu       sync.Mutex
	learners map[string]*sync.Mutex
}

// NewService creates a Service. The analyzer and both repos are required.
func NewService(analyzer reasoning.Analyzer, weights evidence.Weights, profiles store.ProfileRepo, events store.EventRepo) (*Service, error) {
	if analyzer == nil {
		return nil, fmt.Errorf("analyzer is required")
	}
	if profiles == nil || events == nil {
		return nil, fmt.Errorf("profile and event repos are required")
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	return &Service{
		analyzer: analyzer,
		weights:  weights,
		profiles: profiles,
		events:   events,
		learners: make(map[string]*sync.Mutex),
	}, nil
}

// Update applies a batch of graded responses to a caller-supplied
// vector without touching the store. Returns the posterior alongside
// the gathered evidence so callers can inspect or persist it.
func (s *Service) Update(ctx context.Context, current traits.Vector, responses []GradedResponse) (estimator.Result, []evidence.Record, error) {
	records, err := s.gather(ctx, responses)
	if err != nil {
		return estimator.Result{}, nil, err
	}
	return estimator.Update(current, records), records, nil
}

// UpdateProfile loads the learner's global and topic vectors, applies
// the evidence batch to both, persists both scopes, and appends the
// evidence audit log. The same batch feeds both scopes, so their
// estimates move together and only their priors can differ.
func (s *Service) UpdateProfile(ctx context.Context, learnerID, topic string, responses []GradedResponse) (*UpdateResult, error) {
	if learnerID == "" {
		return nil, fmt.Errorf("learner ID must not be empty")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic must not be empty")
	}

	lock := s.learnerLock(learnerID)
	lock.Lock()
	defer lock.Unlock()

	global, globalMeta, err := s.loadVector(ctx, learnerID, "")
	if err != nil {
		return nil, err
	}
	topical, topicMeta, err := s.loadVector(ctx, learnerID, topic)
	if err != nil {
		return nil, err
	}

	records, err := s.gather(ctx, responses)
	if err != nil {
		return nil, err
	}

	globalResult := estimator.Update(global, records)
	topicResult := estimator.Update(topical, records)

	result := &UpdateResult{
		BatchID: uuid.NewString(),
		Global:  ScopeResult{Vector: globalResult.Vector, Diagnostics: globalResult.Diagnostics},
		Topic:   ScopeResult{Vector: topicResult.Vector, Diagnostics: topicResult.Diagnostics},
		Records: records,
	}

	// An empty batch changes nothing; skip the writes entirely.
	if len(responses) == 0 {
		return result, nil
	}

	if err := s.appendEvidence(ctx, result.BatchID, learnerID, topic, records); err != nil {
		return nil, err
	}

	delta := len(responses)
	if err := s.saveVector(ctx, learnerID, "", globalResult.Vector, globalMeta+delta); err != nil {
		return nil, err
	}
	if err := s.saveVector(ctx, learnerID, topic, topicResult.Vector, topicMeta+delta); err != nil {
		return nil, err
	}

	return result, nil
}

// gather maps each question to its target traits and extracts evidence,
// scoring reasoning concurrently per response.
func (s *Service) gather(ctx context.Context, responses []GradedResponse) ([]evidence.Record, error) {
	buffer := &evidence.LogBuffer{}
	gatherer, err := evidence.NewGatherer(s.analyzer, s.weights, buffer)
	if err != nil {
		return nil, err
	}

	mapped := make([]qmatrix.Result, len(responses))
	batch := make([]evidence.Response, len(responses))
	for i, r := range responses {
		mapped[i] = qmatrix.Map(r.Question)
		if mapped[i].Defaulted {
			fmt.Fprintf(os.Stderr, "warning: question %s has no trait mapping, using default\n", r.Response.QuestionID)
		}
		batch[i] = r.Response
	}

	return gatherer.GatherBatch(ctx, batch, func(i int) []traits.Trait {
		return mapped[i].Traits
	})
}

// loadVector reads one scope's vector, filling the neutral prior for a
// scope that has never been written. The int is the stored question count.
func (s *Service) loadVector(ctx context.Context, learnerID, topic string) (traits.Vector, int, error) {
	p, err := s.profiles.Load(ctx, learnerID, topic)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s profile: %w", scopeName(topic), err)
	}
	if p == nil {
		return traits.Neutral(), 0, nil
	}

	v := make(traits.Vector, len(p.Traits))
	for name, value := range p.Traits {
		if t, err := traits.Parse(name); err == nil {
			v[t] = value
		}
	}
	return v.Normalized(), p.QuestionCount, nil
}

func (s *Service) saveVector(ctx context.Context, learnerID, topic string, v traits.Vector, questionCount int) error {
	stored := make(map[string]float64, len(v))
	for t, value := range v {
		stored[string(t)] = value
	}
	err := s.profiles.Save(ctx, &store.Profile{
		LearnerID:     learnerID,
		Topic:         topic,
		Traits:        stored,
		QuestionCount: questionCount,
	})
	if err != nil {
		return fmt.Errorf("save %s profile: %w", scopeName(topic), err)
	}
	return nil
}

func (s *Service) appendEvidence(ctx context.Context, batchID, learnerID, topic string, records []evidence.Record) error {
	batch := make([]store.EvidenceEventData, len(records))
	for i, rec := range records {
		batch[i] = store.EvidenceEventData{
			BatchID:       batchID,
			LearnerID:     learnerID,
			Topic:         topic,
			QuestionID:    rec.QuestionID,
			Trait:         string(rec.Trait),
			Combined:      rec.Combined,
			Correctness:   rec.Correctness,
			Calibration:   rec.Calibration,
			Reasoning:     rec.Reasoning,
			Misconception: rec.Misconception,
			Markers:       rec.Markers,
		}
	}
	if err := s.events.AppendEvidence(ctx, batch); err != nil {
		return fmt.Errorf("append evidence log: %w", err)
	}
	return nil
}

func (s *Service) learnerLock(learnerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.learners[learnerID]
	if !ok {
		lock = &sync.Mutex{}
		s.learners[learnerID] = lock
	}
	return lock
}

func scopeName(topic string) string {
	if topic == "" {
		return "global"
	}
	return "topic"
}
