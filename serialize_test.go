package larch

import (
	"testing"

	"github.com/evergreen-ci/larch/namespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func docKeys(t *testing.T, doc bson.D) []string {
	t.Helper()
	keys := make([]string, 0, len(doc))
	for _, elem := range doc {
		keys = append(keys, elem.Key)
	}
	return keys
}

func TestSerializeDefaults(t *testing.T) {
	req := New(namespace.New("test", "coll"), []bson.Raw{rawDoc(bson.D{{Key: "$match", Value: bson.D{}}})})

	doc := req.Document()
	assert.Equal(t, []string{"aggregate", "pipeline", "cursor"}, docKeys(t, doc))

	raw := rawDoc(doc)
	name, err := raw.LookupErr("aggregate")
	require.NoError(t, err)
	assert.Equal(t, "coll", name.StringValue())

	batchSize, err := raw.LookupErr("cursor", "batchSize")
	require.NoError(t, err)
	size, ok := batchSize.AsInt64OK()
	require.True(t, ok)
	assert.Equal(t, DefaultBatchSize, size)
}

func TestSerializeOmitsCursorForExplain(t *testing.T) {
	req := New(namespace.New("test", "coll"), nil)
	req.SetExplain(VerbosityQueryPlanner)

	raw := rawDoc(req.Document())
	_, err := raw.LookupErr("cursor")
	assert.Error(t, err)
	_, err = raw.LookupErr("explain")
	assert.Error(t, err)
}

func TestSerializeEmitsNonDefaultOptions(t *testing.T) {
	req := New(namespace.New("test", "coll"), nil)
	req.SetAllowDiskUse(true)
	req.SetFromRouter(true)
	req.SetBypassDocumentValidation(true)
	req.SetCollation(rawDoc(bson.D{{Key: "locale", Value: "fr"}}))
	req.SetHint(rawDoc(bson.D{{Key: "a", Value: 1}}))
	require.NoError(t, req.SetBatchSize(10))

	doc := req.Document()
	assert.Equal(t, []string{
		"aggregate",
		"pipeline",
		"allowDiskUse",
		"fromRouter",
		"bypassDocumentValidation",
		"collation",
		"cursor",
		"hint",
	}, docKeys(t, doc))

	raw := rawDoc(doc)
	for _, key := range []string{"allowDiskUse", "fromRouter", "bypassDocumentValidation"} {
		val, err := raw.LookupErr(key)
		require.NoError(t, err, key)
		assert.True(t, val.Boolean(), key)
	}

	collation, err := raw.LookupErr("collation")
	require.NoError(t, err)
	assert.Equal(t, rawDoc(bson.D{{Key: "locale", Value: "fr"}}), collation.Document())
}

func TestSerializeIsParseable(t *testing.T) {
	req := New(namespace.New("test", "coll"), []bson.Raw{rawDoc(bson.D{{Key: "$limit", Value: 2}})})

	reparsed, err := Parse(req.Namespace(), rawDoc(req.Document()), VerbosityNone)
	require.NoError(t, err)
	assert.Equal(t, req.Pipeline(), reparsed.Pipeline())
	assert.Equal(t, req.BatchSize(), reparsed.BatchSize())
}
