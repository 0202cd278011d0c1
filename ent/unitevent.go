// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/EyalShefer/ai-lms-system-sub002/ent/unitevent"
)

// UnitEvent is the model entity for the UnitEvent schema.
type UnitEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Topic the unit was generated for
	Topic string `json:"topic,omitempty"`
	// Audience band: elementary, middle, high-school
	Band string `json:"band,omitempty"`
	// Length tier: short, medium, long
	Tier string `json:"tier,omitempty"`
	// Final outcome: accepted, exhausted, failed
	Status string `json:"status,omitempty"`
	// Fix attempts spent before the run ended
	Attempts int `json:"attempts,omitempty"`
	// Blocks in the accepted document, 0 otherwise
	BlockCount   int `json:"block_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnitEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unitevent.FieldID, unitevent.FieldSequence, unitevent.FieldAttempts, unitevent.FieldBlockCount:
			values[i] = new(sql.NullInt64)
		case unitevent.FieldTopic, unitevent.FieldBand, unitevent.FieldTier, unitevent.FieldStatus:
			values[i] = new(sql.NullString)
		case unitevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnitEvent fields.
func (_m *UnitEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unitevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case unitevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case unitevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case unitevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case unitevent.FieldBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field band", values[i])
			} else if value.Valid {
				_m.Band = value.String
			}
		case unitevent.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case unitevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case unitevent.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case unitevent.FieldBlockCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field block_count", values[i])
			} else if value.Valid {
				_m.BlockCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UnitEvent.
// This includes values selected through modifiers, order, etc.
func (_m *UnitEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UnitEvent.
// Note that you need to call UnitEvent.Unwrap() before calling this method if this UnitEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnitEvent) Update() *UnitEventUpdateOne {
	return NewUnitEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnitEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnitEvent) Unwrap() *UnitEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnitEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnitEvent) String() string {
	var builder strings.Builder
	builder.WriteString("UnitEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("band=")
	builder.WriteString(_m.Band)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("block_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockCount))
	builder.WriteByte(')')
	return builder.String()
}

// UnitEvents is a parsable slice of UnitEvent.
type UnitEvents []*UnitEvent
