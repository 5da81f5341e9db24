package rest

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evergreen-ci/gimlet"
	"github.com/evergreen-ci/larch"
	"github.com/evergreen-ci/larch/namespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func rawDoc(t *testing.T, doc bson.D) bson.Raw {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestValidateHandlerParse(t *testing.T) {
	body := []byte(`{"pipeline": [{"$match": {"x": 1}}], "cursor": {}}`)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/aggregate/test.coll/validate?verbosity=executionStats", bytes.NewReader(body))
	r = gimlet.SetURLVars(r, map[string]string{"namespace": "test.coll"})

	h := &validateAggregateHandler{}
	require.NoError(t, h.Parse(context.Background(), r))
	assert.Equal(t, namespace.New("test", "coll"), h.ns)
	assert.Equal(t, larch.VerbosityExecStats, h.verbosity)
	assert.NotEmpty(t, h.cmd)
}

func TestValidateHandlerParseErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		ns   string
		url  string
		body string
	}{
		"BadNamespace": {ns: "nodot", url: "/api/v1/aggregate/nodot/validate", body: `{"pipeline": []}`},
		"BadVerbosity": {ns: "test.coll", url: "/api/v1/aggregate/test.coll/validate?verbosity=bogus", body: `{"pipeline": []}`},
		"BadBody":      {ns: "test.coll", url: "/api/v1/aggregate/test.coll/validate", body: `{"pipeline": `},
	} {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, tc.url, bytes.NewReader([]byte(tc.body)))
			r = gimlet.SetURLVars(r, map[string]string{"namespace": tc.ns})

			h := &validateAggregateHandler{}
			assert.Error(t, h.Parse(context.Background(), r))
		})
	}
}

func TestValidateHandlerRun(t *testing.T) {
	h := &validateAggregateHandler{
		ns: namespace.New("test", "coll"),
		cmd: rawDoc(t, bson.D{
			{Key: "pipeline", Value: bson.A{bson.D{{Key: "$match", Value: bson.D{}}}}},
			{Key: "cursor", Value: bson.D{}},
		}),
	}

	resp := h.Run(context.Background())
	require.Equal(t, http.StatusOK, resp.Status())

	data, ok := resp.Data().(validationResponse)
	require.True(t, ok)
	assert.True(t, data.Ok)
	assert.Contains(t, string(data.Command), `"aggregate"`)
	assert.Contains(t, string(data.Command), `"coll"`)
}

func TestValidateHandlerRunParseFailure(t *testing.T) {
	h := &validateAggregateHandler{
		ns:  namespace.New("test", "coll"),
		cmd: rawDoc(t, bson.D{{Key: "pipeline", Value: bson.A{}}}),
	}

	resp := h.Run(context.Background())
	assert.Equal(t, http.StatusBadRequest, resp.Status())
}

func TestValidateHandlerRunReadOnlyEngine(t *testing.T) {
	larch.SetEngineReadOnly(true)
	defer larch.SetEngineReadOnly(false)

	h := &validateAggregateHandler{
		ns: namespace.New("test", "coll"),
		cmd: rawDoc(t, bson.D{
			{Key: "pipeline", Value: bson.A{}},
			{Key: "cursor", Value: bson.D{}},
			{Key: "allowDiskUse", Value: true},
		}),
	}

	resp := h.Run(context.Background())
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status())
}

func TestAppResolves(t *testing.T) {
	app, err := NewApp(8080)
	require.NoError(t, err)
	assert.NoError(t, app.Resolve())
}
