package larch

import "go.mongodb.org/mongo-driver/bson"

// Document serializes the request into its canonical command form. The
// pipeline is emitted exactly as supplied; callers holding an optimized
// pipeline will want to substitute their own serialization of it.
//
// Booleans appear only when they differ from their defaults, and
// collation and hint only when present. The cursor option is emitted
// only when the request is not an explain: the explain command format
// wraps the aggregate command in an outer envelope, so the verbosity is
// never part of the command body and explain requests carry no cursor
// option.
func (r *Request) Document() bson.D {
	doc := bson.D{
		{Key: CommandFieldName, Value: r.ns.Collection()},
		{Key: PipelineFieldName, Value: r.pipeline},
	}

	if r.allowDiskUse {
		doc = append(doc, bson.E{Key: AllowDiskUseFieldName, Value: true})
	}
	if r.fromRouter {
		doc = append(doc, bson.E{Key: FromRouterFieldName, Value: true})
	}
	if r.bypassDocumentValidation {
		doc = append(doc, bson.E{Key: BypassDocumentValidationFieldName, Value: true})
	}
	if len(r.collation) > 0 {
		doc = append(doc, bson.E{Key: CollationFieldName, Value: r.collation})
	}
	if r.explain == VerbosityNone {
		doc = append(doc, bson.E{Key: CursorFieldName, Value: bson.D{{Key: BatchSizeFieldName, Value: r.batchSize}}})
	}
	if len(r.hint) > 0 {
		doc = append(doc, bson.E{Key: HintFieldName, Value: r.hint})
	}

	return doc
}
