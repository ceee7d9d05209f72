package store

import (
	"context"
	"fmt"

	"github.com/smehra/traitlab/ent"
	"github.com/smehra/traitlab/ent/evidenceevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendEvidence(ctx context.Context, batch []EvidenceEventData) error {
	for i, data := range batch {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}

		builder := r.client.EvidenceEvent.Create().
			SetSequence(seqNum).
			SetBatchID(data.BatchID).
			SetLearnerID(data.LearnerID).
			SetTopic(data.Topic).
			SetQuestionID(data.QuestionID).
			SetTrait(data.Trait).
			SetCombined(data.Combined).
			SetCorrectness(data.Correctness).
			SetCalibration(data.Calibration).
			SetReasoning(data.Reasoning).
			SetMisconception(data.Misconception)

		if len(data.Markers) > 0 {
			builder = builder.SetMarkers(data.Markers)
		}

		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("save evidence event %d/%d: %w", i+1, len(batch), err)
		}
	}
	return nil
}

func (r *eventRepo) QueryEvidence(ctx context.Context, learnerID string, filter EvidenceFilter, opts QueryOpts) ([]*EvidenceEvent, error) {
	q := r.client.EvidenceEvent.Query().
		Where(evidenceevent.LearnerID(learnerID))

	if filter.Topic != "" {
		q = q.Where(evidenceevent.Topic(filter.Topic))
	}
	if filter.Trait != "" {
		q = q.Where(evidenceevent.Trait(filter.Trait))
	}
	if filter.QuestionID != "" {
		q = q.Where(evidenceevent.QuestionID(filter.QuestionID))
	}
	if opts.After > 0 {
		q = q.Where(evidenceevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(evidenceevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(evidenceevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(evidenceevent.TimestampLTE(opts.To))
	}

	q = q.Order(ent.Asc(evidenceevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evidence events: %w", err)
	}

	out := make([]*EvidenceEvent, len(rows))
	for i, row := range rows {
		out[i] = &EvidenceEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			EvidenceEventData: EvidenceEventData{
				BatchID:       row.BatchID,
				LearnerID:     row.LearnerID,
				Topic:         row.Topic,
				QuestionID:    row.QuestionID,
				Trait:         row.Trait,
				Combined:      row.Combined,
				Correctness:   row.Correctness,
				Calibration:   row.Calibration,
				Reasoning:     row.Reasoning,
				Misconception: row.Misconception,
				Markers:       row.Markers,
			},
		}
	}
	return out, nil
}
