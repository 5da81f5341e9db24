package larch

import (
	"github.com/evergreen-ci/larch/namespace"
	"go.mongodb.org/mongo-driver/bson"
)

// Request represents the user-supplied options to the aggregate command.
// The namespace and pipeline are fixed at construction; every other
// field has a default and can be refined through its setter.
type Request struct {
	ns       namespace.Namespace
	pipeline []bson.Raw

	batchSize int64

	// Owned copies of the user-supplied documents, or nil when the
	// option was not given. A hint supplied by index name is held as
	// {$hint: <name>}; a hint supplied by key pattern is held as the
	// pattern itself.
	collation bson.Raw
	hint      bson.Raw

	explain Verbosity

	allowDiskUse             bool
	fromRouter               bool
	bypassDocumentValidation bool
}

// New constructs a Request over the given namespace and pipeline with
// every option at its default. The pipeline documents are copied.
func New(ns namespace.Namespace, pipeline []bson.Raw) *Request {
	r := &Request{
		ns:        ns,
		pipeline:  make([]bson.Raw, 0, len(pipeline)),
		batchSize: DefaultBatchSize,
	}
	for _, stage := range pipeline {
		r.pipeline = append(r.pipeline, copyDoc(stage))
	}

	return r
}

func copyDoc(doc bson.Raw) bson.Raw {
	if len(doc) == 0 {
		return nil
	}
	owned := make(bson.Raw, len(doc))
	copy(owned, doc)

	return owned
}

func (r *Request) Namespace() namespace.Namespace { return r.ns }

// Pipeline returns the unparsed pipeline stages in their original order.
// The returned slice is a copy; the pipeline itself is fixed at
// construction.
func (r *Request) Pipeline() []bson.Raw {
	pipeline := make([]bson.Raw, len(r.pipeline))
	copy(pipeline, r.pipeline)

	return pipeline
}

func (r *Request) BatchSize() int64 { return r.batchSize }

// Collation returns nil if no collation was specified.
func (r *Request) Collation() bson.Raw { return r.collation }

// Hint returns nil if no hint was specified.
func (r *Request) Hint() bson.Raw { return r.hint }

func (r *Request) Explain() Verbosity { return r.explain }

func (r *Request) IsFromRouter() bool { return r.fromRouter }

func (r *Request) ShouldAllowDiskUse() bool { return r.allowDiskUse }

func (r *Request) ShouldBypassDocumentValidation() bool { return r.bypassDocumentValidation }

// SetBatchSize rejects negative values; zero is allowed. Input reaching
// this through Parse is validated upstream, so an invalid-batch-size
// error here indicates a bug in the caller rather than bad remote input.
func (r *Request) SetBatchSize(batchSize int64) error {
	if batchSize < 0 {
		return newError(ErrorCodeInvalidBatchSize, "%s must be non-negative", BatchSizeFieldName)
	}
	r.batchSize = batchSize

	return nil
}

// SetCollation stores an owned copy of the given collation document.
func (r *Request) SetCollation(collation bson.Raw) { r.collation = copyDoc(collation) }

// SetHint stores an owned copy of the given hint document.
func (r *Request) SetHint(hint bson.Raw) { r.hint = copyDoc(hint) }

func (r *Request) SetExplain(verbosity Verbosity) { r.explain = verbosity }

func (r *Request) SetAllowDiskUse(allowDiskUse bool) { r.allowDiskUse = allowDiskUse }

func (r *Request) SetFromRouter(fromRouter bool) { r.fromRouter = fromRouter }

func (r *Request) SetBypassDocumentValidation(bypass bool) { r.bypassDocumentValidation = bypass }
