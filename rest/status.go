package rest

import (
	"context"
	"net/http"

	"github.com/evergreen-ci/gimlet"
	"github.com/evergreen-ci/larch"
)

type statusHandler struct{}

func makeStatusHandler() gimlet.RouteHandler { return &statusHandler{} }

func (h *statusHandler) Factory() gimlet.RouteHandler { return &statusHandler{} }

func (h *statusHandler) Parse(ctx context.Context, r *http.Request) error { return nil }

func (h *statusHandler) Run(ctx context.Context) gimlet.Responder {
	return gimlet.NewJSONResponse(struct {
		Status         string `json:"status"`
		EngineReadOnly bool   `json:"engine_read_only"`
	}{
		Status:         "ok",
		EngineReadOnly: larch.EngineReadOnly(),
	})
}
