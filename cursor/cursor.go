// Package cursor parses the cursor option common to cursor-returning
// commands.
package cursor

import (
	"math"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// BatchSizeFieldName is the only field recognized inside a cursor option
// document.
const BatchSizeFieldName = "batchSize"

// ParseOptions extracts the batch size from a cursor option document.
// The empty document is valid and selects defaultBatchSize. The batch
// size must be a whole number and non-negative; zero is allowed.
func ParseOptions(doc bson.Raw, defaultBatchSize int64) (int64, error) {
	batchSize := defaultBatchSize

	elems, err := doc.Elements()
	if err != nil {
		return 0, errors.Wrap(err, "reading cursor object")
	}

	for _, elem := range elems {
		if elem.Key() != BatchSizeFieldName {
			return 0, errors.Errorf("unrecognized field '%s' in cursor object", elem.Key())
		}

		val := elem.Value()
		switch val.Type {
		case bsontype.Int32:
			batchSize = int64(val.Int32())
		case bsontype.Int64:
			batchSize = val.Int64()
		case bsontype.Double:
			d := val.Double()
			if d != math.Trunc(d) {
				return 0, errors.Errorf("%s must be a whole number", BatchSizeFieldName)
			}
			batchSize = int64(d)
		default:
			return 0, errors.Errorf("%s must be a number, not a %s", BatchSizeFieldName, val.Type)
		}

		if batchSize < 0 {
			return 0, errors.Errorf("%s must be non-negative", BatchSizeFieldName)
		}
	}

	return batchSize, nil
}
