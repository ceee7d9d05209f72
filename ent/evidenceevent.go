// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/smehra/traitlab/ent/evidenceevent"
)

// EvidenceEvent is the model entity for the EvidenceEvent schema.
type EvidenceEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global monotonic sequence number, shared across event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID shared by all records from one update call
	BatchID string `json:"batch_id,omitempty"`
	// Learner the evidence belongs to
	LearnerID string `json:"learner_id,omitempty"`
	// Topic the quiz question was drawn from
	Topic string `json:"topic,omitempty"`
	// Question that produced this observation
	QuestionID string `json:"question_id,omitempty"`
	// Trait the evidence applies to
	Trait string `json:"trait,omitempty"`
	// Signed evidence value fed into the estimator
	Combined float64 `json:"combined,omitempty"`
	// Correctness component of the combined value
	Correctness float64 `json:"correctness,omitempty"`
	// Confidence calibration component (Brier-based)
	Calibration float64 `json:"calibration,omitempty"`
	// Reasoning quality component
	Reasoning float64 `json:"reasoning,omitempty"`
	// Misconception penalty component
	Misconception float64 `json:"misconception,omitempty"`
	// Text markers the reasoning analyzer matched
	Markers      []string `json:"markers,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvidenceEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidenceevent.FieldMarkers:
			values[i] = new([]byte)
		case evidenceevent.FieldCombined, evidenceevent.FieldCorrectness, evidenceevent.FieldCalibration, evidenceevent.FieldReasoning, evidenceevent.FieldMisconception:
			values[i] = new(sql.NullFloat64)
		case evidenceevent.FieldID, evidenceevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case evidenceevent.FieldBatchID, evidenceevent.FieldLearnerID, evidenceevent.FieldTopic, evidenceevent.FieldQuestionID, evidenceevent.FieldTrait:
			values[i] = new(sql.NullString)
		case evidenceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvidenceEvent fields.
func (_m *EvidenceEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidenceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evidenceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case evidenceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case evidenceevent.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case evidenceevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case evidenceevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case evidenceevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case evidenceevent.FieldTrait:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trait", values[i])
			} else if value.Valid {
				_m.Trait = value.String
			}
		case evidenceevent.FieldCombined:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field combined", values[i])
			} else if value.Valid {
				_m.Combined = value.Float64
			}
		case evidenceevent.FieldCorrectness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field correctness", values[i])
			} else if value.Valid {
				_m.Correctness = value.Float64
			}
		case evidenceevent.FieldCalibration:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field calibration", values[i])
			} else if value.Valid {
				_m.Calibration = value.Float64
			}
		case evidenceevent.FieldReasoning:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.Float64
			}
		case evidenceevent.FieldMisconception:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field misconception", values[i])
			} else if value.Valid {
				_m.Misconception = value.Float64
			}
		case evidenceevent.FieldMarkers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field markers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Markers); err != nil {
					return fmt.Errorf("unmarshal field markers: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvidenceEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EvidenceEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvidenceEvent.
// Note that you need to call EvidenceEvent.Unwrap() before calling this method if this EvidenceEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvidenceEvent) Update() *EvidenceEventUpdateOne {
	return NewEvidenceEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvidenceEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvidenceEvent) Unwrap() *EvidenceEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvidenceEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvidenceEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EvidenceEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("trait=")
	builder.WriteString(_m.Trait)
	builder.WriteString(", ")
	builder.WriteString("combined=")
	builder.WriteString(fmt.Sprintf("%v", _m.Combined))
	builder.WriteString(", ")
	builder.WriteString("correctness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correctness))
	builder.WriteString(", ")
	builder.WriteString("calibration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Calibration))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reasoning))
	builder.WriteString(", ")
	builder.WriteString("misconception=")
	builder.WriteString(fmt.Sprintf("%v", _m.Misconception))
	builder.WriteString(", ")
	builder.WriteString("markers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Markers))
	builder.WriteByte(')')
	return builder.String()
}

// EvidenceEvents is a parsable slice of EvidenceEvent.
type EvidenceEvents []*EvidenceEvent
