package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/evergreen-ci/gimlet"
	"github.com/evergreen-ci/larch"
	"github.com/evergreen-ci/larch/namespace"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

type validateAggregateHandler struct {
	ns        namespace.Namespace
	verbosity larch.Verbosity
	cmd       bson.Raw
}

func makeValidateAggregateHandler() gimlet.RouteHandler {
	return &validateAggregateHandler{}
}

func (h *validateAggregateHandler) Factory() gimlet.RouteHandler {
	return &validateAggregateHandler{}
}

// Parse reads the aggregate command document from the body as extended
// JSON. The optional verbosity query parameter plays the role of the
// outer explain envelope's verbosity.
func (h *validateAggregateHandler) Parse(ctx context.Context, r *http.Request) error {
	var err error
	h.ns, err = namespace.Parse(gimlet.GetVars(r)["namespace"])
	if err != nil {
		return errors.Wrap(err, "parsing namespace")
	}

	if v := r.URL.Query().Get("verbosity"); v != "" {
		h.verbosity, err = larch.ParseVerbosity(v)
		if err != nil {
			return errors.Wrap(err, "parsing verbosity")
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.Wrap(err, "reading request body")
	}

	var doc bson.D
	if err := bson.UnmarshalExtJSON(body, false, &doc); err != nil {
		return errors.Wrap(err, "parsing command document")
	}
	h.cmd, err = bson.Marshal(doc)

	return errors.Wrap(err, "converting command document")
}

func (h *validateAggregateHandler) Run(ctx context.Context) gimlet.Responder {
	req, err := larch.Parse(h.ns, h.cmd, h.verbosity)
	if err != nil {
		code := http.StatusBadRequest
		if larch.IsIllegalOperation(err) {
			code = http.StatusUnprocessableEntity
		}
		return gimlet.MakeJSONErrorResponder(gimlet.ErrorResponse{
			StatusCode: code,
			Message:    err.Error(),
		})
	}

	canonical, err := bson.MarshalExtJSON(req.Document(), false, false)
	if err != nil {
		return gimlet.MakeJSONInternalErrorResponder(errors.Wrap(err, "rendering canonical command"))
	}

	return gimlet.NewJSONResponse(validationResponse{
		Ok:      true,
		Command: json.RawMessage(canonical),
	})
}

type validationResponse struct {
	Ok      bool            `json:"ok"`
	Command json.RawMessage `json:"command"`
}
