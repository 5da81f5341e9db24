// Package larch implements the envelope of the aggregate command: it
// parses the raw command document into a validated Request, and
// serializes a Request back into its canonical wire form.
//
// The package validates the envelope only. Pipeline stages are carried
// as opaque documents; nothing here interprets their contents or
// executes anything.
package larch

// Top-level field names recognized in an aggregate command document.
const (
	CommandFieldName                  = "aggregate"
	PipelineFieldName                 = "pipeline"
	CursorFieldName                   = "cursor"
	BatchSizeFieldName                = "batchSize"
	CollationFieldName                = "collation"
	HintFieldName                     = "hint"
	ExplainFieldName                  = "explain"
	FromRouterFieldName               = "fromRouter"
	AllowDiskUseFieldName             = "allowDiskUse"
	BypassDocumentValidationFieldName = "bypassDocumentValidation"
)

// Fields owned by the surrounding command machinery. Their values are
// parsed elsewhere, but their presence still matters for the explain
// conflict checks.
const (
	maxTimeFieldName      = "maxTimeMS"
	readConcernFieldName  = "readConcern"
	writeConcernFieldName = "writeConcern"
)

// DefaultBatchSize applies when the cursor option does not carry a
// batchSize of its own.
const DefaultBatchSize = int64(101)
