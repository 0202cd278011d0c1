// Code generated by ent, DO NOT EDIT.

package unitevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/EyalShefer/ai-lms-system-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldTopic, v))
}

// Band applies equality check predicate on the "band" field. It's identical to BandEQ.
func Band(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldBand, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldTier, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldStatus, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldAttempts, v))
}

// BlockCount applies equality check predicate on the "block_count" field. It's identical to BlockCountEQ.
func BlockCount(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldBlockCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldContainsFold(FieldTopic, v))
}

// BandEQ applies the EQ predicate on the "band" field.
func BandEQ(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldBand, v))
}

// BandNEQ applies the NEQ predicate on the "band" field.
func BandNEQ(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNEQ(FieldBand, v))
}

// BandIn applies the In predicate on the "band" field.
func BandIn(vs ...string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldIn(FieldBand, vs...))
}

// BandNotIn applies the NotIn predicate on the "band" field.
func BandNotIn(vs ...string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNotIn(FieldBand, vs...))
}

// BandGT applies the GT predicate on the "band" field.
func BandGT(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGT(FieldBand, v))
}

// BandGTE applies the GTE predicate on the "band" field.
func BandGTE(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGTE(FieldBand, v))
}

// BandLT applies the LT predicate on the "band" field.
func BandLT(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLT(FieldBand, v))
}

// BandLTE applies the LTE predicate on the "band" field.
func BandLTE(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLTE(FieldBand, v))
}

// BandContains applies the Contains predicate on the "band" field.
func BandContains(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldContains(FieldBand, v))
}

// BandHasPrefix applies the HasPrefix predicate on the "band" field.
func BandHasPrefix(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldHasPrefix(FieldBand, v))
}

// BandHasSuffix applies the HasSuffix predicate on the "band" field.
func BandHasSuffix(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldHasSuffix(FieldBand, v))
}

// BandEqualFold applies the EqualFold predicate on the "band" field.
func BandEqualFold(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEqualFold(FieldBand, v))
}

// BandContainsFold applies the ContainsFold predicate on the "band" field.
func BandContainsFold(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldContainsFold(FieldBand, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldContainsFold(FieldTier, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldContainsFold(FieldStatus, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLTE(FieldAttempts, v))
}

// BlockCountEQ applies the EQ predicate on the "block_count" field.
func BlockCountEQ(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldEQ(FieldBlockCount, v))
}

// BlockCountNEQ applies the NEQ predicate on the "block_count" field.
func BlockCountNEQ(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNEQ(FieldBlockCount, v))
}

// BlockCountIn applies the In predicate on the "block_count" field.
func BlockCountIn(vs ...int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldIn(FieldBlockCount, vs...))
}

// BlockCountNotIn applies the NotIn predicate on the "block_count" field.
func BlockCountNotIn(vs ...int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldNotIn(FieldBlockCount, vs...))
}

// BlockCountGT applies the GT predicate on the "block_count" field.
func BlockCountGT(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGT(FieldBlockCount, v))
}

// BlockCountGTE applies the GTE predicate on the "block_count" field.
func BlockCountGTE(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldGTE(FieldBlockCount, v))
}

// BlockCountLT applies the LT predicate on the "block_count" field.
func BlockCountLT(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLT(FieldBlockCount, v))
}

// BlockCountLTE applies the LTE predicate on the "block_count" field.
func BlockCountLTE(v int) predicate.UnitEvent {
	return predicate.UnitEvent(sql.FieldLTE(FieldBlockCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnitEvent) predicate.UnitEvent {
	return predicate.UnitEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnitEvent) predicate.UnitEvent {
	return predicate.UnitEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnitEvent) predicate.UnitEvent {
	return predicate.UnitEvent(sql.NotPredicates(p))
}
