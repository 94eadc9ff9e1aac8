package progress

import "github.com/dmitrymomot/recordkit/pkg/report"

// NopEmitter discards every event. Useful for library callers that drive
// the pipeline without console output, and as a test double.
type NopEmitter struct{}

// NewNopEmitter creates an emitter that does nothing.
func NewNopEmitter() *NopEmitter {
	return &NopEmitter{}
}

func (*NopEmitter) Stage(string, string)                 {}
func (*NopEmitter) Info(string)                          {}
func (*NopEmitter) Partition(int, int)                   {}
func (*NopEmitter) FieldSummary([]report.FieldCount)     {}
func (*NopEmitter) ArtifactWritten(ArtifactKind, string) {}
func (*NopEmitter) NoValidRecords()                      {}
func (*NopEmitter) Complete(map[string]any)              {}
func (*NopEmitter) Fail(string, error)                   {}
