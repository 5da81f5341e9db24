// Package rest exposes the aggregate request validator over HTTP.
package rest

import (
	"github.com/evergreen-ci/gimlet"
	"github.com/pkg/errors"
)

// NewApp builds the gimlet application serving the validation API on the
// given port. Callers run it with app.Run.
func NewApp(port int) (*gimlet.APIApp, error) {
	app := gimlet.NewApp()
	app.SetPrefix("/api")
	if err := app.SetPort(port); err != nil {
		return nil, errors.WithStack(err)
	}
	app.AddMiddleware(gimlet.MakeRecoveryLogger())

	app.AddRoute("/status").Version(1).Get().RouteHandler(makeStatusHandler())
	app.AddRoute("/aggregate/{namespace}/validate").Version(1).Post().RouteHandler(makeValidateAggregateHandler())

	return app, nil
}
