// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/smehra/traitlab/ent/traitprofile"
)

// TraitProfile is the model entity for the TraitProfile schema.
type TraitProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner this profile belongs to
	LearnerID string `json:"learner_id,omitempty"`
	// Topic scope; empty string is the global profile
	Topic string `json:"topic,omitempty"`
	// Trait name to estimate in [0,1]
	Traits map[string]float64 `json:"traits,omitempty"`
	// Responses folded into this profile so far
	QuestionCount int `json:"question_count,omitempty"`
	// When the profile was last written
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TraitProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case traitprofile.FieldTraits:
			values[i] = new([]byte)
		case traitprofile.FieldID, traitprofile.FieldQuestionCount:
			values[i] = new(sql.NullInt64)
		case traitprofile.FieldLearnerID, traitprofile.FieldTopic:
			values[i] = new(sql.NullString)
		case traitprofile.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TraitProfile fields.
func (_m *TraitProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case traitprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case traitprofile.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case traitprofile.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case traitprofile.FieldTraits:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field traits", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Traits); err != nil {
					return fmt.Errorf("unmarshal field traits: %w", err)
				}
			}
		case traitprofile.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case traitprofile.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TraitProfile.
// This includes values selected through modifiers, order, etc.
func (_m *TraitProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TraitProfile.
// Note that you need to call TraitProfile.Unwrap() before calling this method if this TraitProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TraitProfile) Update() *TraitProfileUpdateOne {
	return NewTraitProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TraitProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TraitProfile) Unwrap() *TraitProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TraitProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TraitProfile) String() string {
	var builder strings.Builder
	builder.WriteString("TraitProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("traits=")
	builder.WriteString(fmt.Sprintf("%v", _m.Traits))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TraitProfiles is a parsable slice of TraitProfile.
type TraitProfiles []*TraitProfile
