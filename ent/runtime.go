// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/EyalShefer/ai-lms-system-sub002/ent/llmrequestevent"
	"github.com/EyalShefer/ai-lms-system-sub002/ent/schema"
	"github.com/EyalShefer/ai-lms-system-sub002/ent/unitevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	uniteventMixin := schema.UnitEvent{}.Mixin()
	uniteventMixinFields0 := uniteventMixin[0].Fields()
	_ = uniteventMixinFields0
	uniteventFields := schema.UnitEvent{}.Fields()
	_ = uniteventFields
	// uniteventDescTimestamp is the schema descriptor for timestamp field.
	uniteventDescTimestamp := uniteventMixinFields0[1].Descriptor()
	// unitevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	unitevent.DefaultTimestamp = uniteventDescTimestamp.Default.(func() time.Time)
	// uniteventDescAttempts is the schema descriptor for attempts field.
	uniteventDescAttempts := uniteventFields[4].Descriptor()
	// unitevent.DefaultAttempts holds the default value on creation for the attempts field.
	unitevent.DefaultAttempts = uniteventDescAttempts.Default.(int)
	// uniteventDescBlockCount is the schema descriptor for block_count field.
	uniteventDescBlockCount := uniteventFields[5].Descriptor()
	// unitevent.DefaultBlockCount holds the default value on creation for the block_count field.
	unitevent.DefaultBlockCount = uniteventDescBlockCount.Default.(int)
}
