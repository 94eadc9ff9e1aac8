package progress

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/dmitrymomot/recordkit/pkg/report"
)

// Event is one machine-readable progress record: a type tag, the emission
// time, and type-specific data.
type Event struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// JSONEmitter writes one JSON event per line, for driving recordkit from
// scripts or other programs.
type JSONEmitter struct {
	encoder *json.Encoder
}

// NewJSONEmitter creates a JSON emitter writing to w. A nil writer falls
// back to stdout.
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONEmitter{encoder: json.NewEncoder(w)}
}

func (e *JSONEmitter) emit(eventType string, data map[string]any) {
	_ = e.encoder.Encode(Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	})
}

// Stage emits a stage event.
func (e *JSONEmitter) Stage(stage string, message string) {
	e.emit("stage", map[string]any{
		"stage":   stage,
		"message": message,
	})
}

// Info emits an info event. JSON consumers get every message; filtering is
// their call.
func (e *JSONEmitter) Info(message string) {
	e.emit("info", map[string]any{
		"message": message,
	})
}

// Partition emits the valid/invalid split.
func (e *JSONEmitter) Partition(valid, invalid int) {
	e.emit("partition", map[string]any{
		"valid":   valid,
		"invalid": invalid,
	})
}

// FieldSummary emits per-field failure counts.
func (e *JSONEmitter) FieldSummary(counts []report.FieldCount) {
	e.emit("field_summary", map[string]any{
		"fields": counts,
	})
}

// ArtifactWritten emits the path of a persisted output file.
func (e *JSONEmitter) ArtifactWritten(kind ArtifactKind, path string) {
	e.emit("artifact", map[string]any{
		"kind": string(kind),
		"path": path,
	})
}

// NoValidRecords emits the skipped-export notice.
func (e *JSONEmitter) NoValidRecords() {
	e.emit("no_valid_records", nil)
}

// Complete emits a completion event.
func (e *JSONEmitter) Complete(summary map[string]any) {
	e.emit("complete", summary)
}

// Fail emits a fatal error event.
func (e *JSONEmitter) Fail(stage string, err error) {
	e.emit("error", map[string]any{
		"stage": stage,
		"error": err.Error(),
	})
}
