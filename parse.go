package larch

import (
	"strings"

	"github.com/evergreen-ci/larch/cursor"
	"github.com/evergreen-ci/larch/namespace"
	"github.com/evergreen-ci/utility"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var optionsParsedElsewhere = []string{
	maxTimeFieldName,
	writeConcernFieldName,
	readConcernFieldName,
	PipelineFieldName,
	CommandFieldName,
}

// Parse builds a validated Request from a raw aggregate command
// document. It fails if a required field is missing, if a field name is
// unrecognized, or if a field has a bad value.
//
// When the command arrived inside an outer explain envelope, the
// envelope's verbosity is passed as the final argument and the command
// document may not itself carry an explain field. Pass VerbosityNone
// otherwise.
func Parse(ns namespace.Namespace, cmd bson.Raw, verbosity Verbosity) (*Request, error) {
	pipeline, err := extractPipeline(cmd)
	if err != nil {
		return nil, err
	}

	req := New(ns, pipeline)

	elems, err := cmd.Elements()
	if err != nil {
		return nil, newError(ErrorCodeFailedToParse, "invalid command document: %s", err.Error())
	}

	hasCursorElem := false
	hasExplainElem := false

	for _, elem := range elems {
		name := elem.Key()

		// Top-level fields prefixed with $ are for the command
		// processor, not us.
		if strings.HasPrefix(name, "$") {
			continue
		}
		if utility.StringSliceContains(optionsParsedElsewhere, name) {
			continue
		}

		val := elem.Value()
		switch name {
		case CursorFieldName:
			if val.Type != bsontype.EmbeddedDocument {
				return nil, newError(ErrorCodeTypeMismatch, "%s must be an object, not a %s", CursorFieldName, val.Type)
			}
			batchSize, err := cursor.ParseOptions(val.Document(), DefaultBatchSize)
			if err != nil {
				return nil, newError(ErrorCodeFailedToParse, "invalid %s option: %s", CursorFieldName, err.Error())
			}
			hasCursorElem = true
			if err := req.SetBatchSize(batchSize); err != nil {
				return nil, err
			}
		case CollationFieldName:
			if val.Type != bsontype.EmbeddedDocument {
				return nil, newError(ErrorCodeTypeMismatch, "%s must be an object, not a %s", CollationFieldName, val.Type)
			}
			req.SetCollation(val.Document())
		case HintFieldName:
			switch val.Type {
			case bsontype.EmbeddedDocument:
				req.SetHint(val.Document())
			case bsontype.String:
				hint, err := bson.Marshal(bson.D{{Key: "$hint", Value: val.StringValue()}})
				if err != nil {
					return nil, errors.Wrap(err, "building hint document")
				}
				req.SetHint(hint)
			default:
				return nil, newError(ErrorCodeFailedToParse,
					"%s must be specified as a string representing an index name, or an object representing an index's key pattern", HintFieldName)
			}
		case ExplainFieldName:
			if val.Type != bsontype.Boolean {
				return nil, newError(ErrorCodeTypeMismatch, "%s must be a boolean, not a %s", ExplainFieldName, val.Type)
			}
			hasExplainElem = true
			if val.Boolean() {
				req.SetExplain(VerbosityQueryPlanner)
			}
		case FromRouterFieldName:
			if val.Type != bsontype.Boolean {
				return nil, newError(ErrorCodeTypeMismatch, "%s must be a boolean, not a %s", FromRouterFieldName, val.Type)
			}
			req.SetFromRouter(val.Boolean())
		case AllowDiskUseFieldName:
			if EngineReadOnly() {
				return nil, newError(ErrorCodeIllegalOperation, "the '%s' option is not permitted in read-only mode", AllowDiskUseFieldName)
			}
			if val.Type != bsontype.Boolean {
				return nil, newError(ErrorCodeTypeMismatch, "%s must be a boolean, not a %s", AllowDiskUseFieldName, val.Type)
			}
			req.SetAllowDiskUse(val.Boolean())
		case BypassDocumentValidationFieldName:
			req.SetBypassDocumentValidation(trueValue(val))
		default:
			return nil, newError(ErrorCodeUnrecognizedField, "unrecognized field '%s'", name)
		}
	}

	if verbosity != VerbosityNone {
		if hasExplainElem {
			return nil, newError(ErrorCodeConflictingOptions,
				"the '%s' option is illegal when an explain verbosity is also provided", ExplainFieldName)
		}
		req.SetExplain(verbosity)
	}

	if !hasCursorElem && req.Explain() == VerbosityNone {
		return nil, newError(ErrorCodeConflictingOptions, "the '%s' option is required, except for aggregation explain", CursorFieldName)
	}
	if req.Explain() != VerbosityNone {
		if _, err := cmd.LookupErr(readConcernFieldName); err == nil {
			return nil, newError(ErrorCodeConflictingOptions, "aggregation explain does not support the '%s' option", readConcernFieldName)
		}
		if _, err := cmd.LookupErr(writeConcernFieldName); err == nil {
			return nil, newError(ErrorCodeConflictingOptions, "aggregation explain does not support the '%s' option", writeConcernFieldName)
		}
	}

	return req, nil
}

func extractPipeline(cmd bson.Raw) ([]bson.Raw, error) {
	pipelineVal, err := cmd.LookupErr(PipelineFieldName)
	if err != nil || pipelineVal.Type != bsontype.Array {
		return nil, newError(ErrorCodeTypeMismatch, "the '%s' option must be specified as an array", PipelineFieldName)
	}
	stages, err := pipelineVal.Array().Values()
	if err != nil {
		return nil, newError(ErrorCodeTypeMismatch, "the '%s' option must be specified as an array", PipelineFieldName)
	}

	pipeline := make([]bson.Raw, 0, len(stages))
	for _, stage := range stages {
		if stage.Type != bsontype.EmbeddedDocument {
			return nil, newError(ErrorCodeTypeMismatch, "each element of the '%s' array must be an object", PipelineFieldName)
		}
		pipeline = append(pipeline, stage.Document())
	}

	return pipeline, nil
}

// trueValue mirrors the wire protocol's truthiness coercion: booleans
// are themselves, numbers are true when nonzero, null and undefined are
// false, and every other value is true.
func trueValue(val bson.RawValue) bool {
	switch val.Type {
	case bsontype.Boolean:
		return val.Boolean()
	case bsontype.Int32:
		return val.Int32() != 0
	case bsontype.Int64:
		return val.Int64() != 0
	case bsontype.Double:
		return val.Double() != 0
	case bsontype.Decimal128:
		bi, _, err := val.Decimal128().BigInt()
		return err != nil || bi.Sign() != 0
	case bsontype.Null, bsontype.Undefined:
		return false
	default:
		return true
	}
}
