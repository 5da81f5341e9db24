package operations

import (
	"context"

	"github.com/evergreen-ci/larch"
	"github.com/evergreen-ci/larch/rest"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Serve returns the command that runs the aggregate validation REST
// service.
func Serve() cli.Command {
	return cli.Command{
		Name:  "serve",
		Usage: "run the aggregate validation REST service",
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  joinFlagNames(portFlagName, "p"),
				Usage: "port for the REST service",
				Value: defaultServicePort,
			},
			cli.BoolFlag{
				Name:  readOnlyFlagName,
				Usage: "treat the storage engine as read-only",
			},
		},
		Action: func(c *cli.Context) error {
			larch.SetEngineReadOnly(c.Bool(readOnlyFlagName))

			app, err := rest.NewApp(c.Int(portFlagName))
			if err != nil {
				return errors.Wrap(err, "building service")
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			grip.Info(message.Fields{
				"message":   "starting aggregate validation service",
				"port":      c.Int(portFlagName),
				"read_only": larch.EngineReadOnly(),
			})

			return errors.Wrap(app.Run(ctx), "running service")
		},
	}
}
