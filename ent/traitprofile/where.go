// Code generated by ent, DO NOT EDIT.

package traitprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/smehra/traitlab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldLearnerID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldTopic, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldQuestionCount, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldLastUpdated, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldContainsFold(FieldLearnerID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldContainsFold(FieldTopic, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLTE(FieldQuestionCount, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.TraitProfile {
	return predicate.TraitProfile(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TraitProfile) predicate.TraitProfile {
	return predicate.TraitProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TraitProfile) predicate.TraitProfile {
	return predicate.TraitProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TraitProfile) predicate.TraitProfile {
	return predicate.TraitProfile(sql.NotPredicates(p))
}
