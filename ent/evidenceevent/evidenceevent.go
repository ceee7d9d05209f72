// Code generated by ent, DO NOT EDIT.

package evidenceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evidenceevent type in the database.
	Label = "evidence_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldTrait holds the string denoting the trait field in the database.
	FieldTrait = "trait"
	// FieldCombined holds the string denoting the combined field in the database.
	FieldCombined = "combined"
	// FieldCorrectness holds the string denoting the correctness field in the database.
	FieldCorrectness = "correctness"
	// FieldCalibration holds the string denoting the calibration field in the database.
	FieldCalibration = "calibration"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldMisconception holds the string denoting the misconception field in the database.
	FieldMisconception = "misconception"
	// FieldMarkers holds the string denoting the markers field in the database.
	FieldMarkers = "markers"
	// Table holds the table name of the evidenceevent in the database.
	Table = "evidence_events"
)

// Columns holds all SQL columns for evidenceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldBatchID,
	FieldLearnerID,
	FieldTopic,
	FieldQuestionID,
	FieldTrait,
	FieldCombined,
	FieldCorrectness,
	FieldCalibration,
	FieldReasoning,
	FieldMisconception,
	FieldMarkers,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	BatchIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// TraitValidator is a validator for the "trait" field. It is called by the builders before save.
	TraitValidator func(string) error
)

// OrderOption defines the ordering options for the EvidenceEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByTrait orders the results by the trait field.
func ByTrait(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrait, opts...).ToFunc()
}

// ByCombined orders the results by the combined field.
func ByCombined(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCombined, opts...).ToFunc()
}

// ByCorrectness orders the results by the correctness field.
func ByCorrectness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectness, opts...).ToFunc()
}

// ByCalibration orders the results by the calibration field.
func ByCalibration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalibration, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByMisconception orders the results by the misconception field.
func ByMisconception(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMisconception, opts...).ToFunc()
}
