package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnitEvent records the outcome of one unit generation run.
type UnitEvent struct {
	ent.Schema
}

func (UnitEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (UnitEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			Comment("Topic the unit was generated for"),
		field.String("band").
			Comment("Audience band: elementary, middle, high-school"),
		field.String("tier").
			Comment("Length tier: short, medium, long"),
		field.String("status").
			Comment("Final outcome: accepted, exhausted, failed"),
		field.Int("attempts").
			Default(0).
			Comment("Fix attempts spent before the run ended"),
		field.Int("block_count").
			Default(0).
			Comment("Blocks in the accepted document, 0 otherwise"),
	}
}

func (UnitEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("status"),
	}
}
