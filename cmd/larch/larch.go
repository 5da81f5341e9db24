package main

import (
	"os"

	"github.com/evergreen-ci/larch/operations"
	"github.com/mongodb/grip"
	"github.com/urfave/cli"
)

func main() {
	grip.EmergencyFatal(buildApp().Run(os.Args))
}

func buildApp() *cli.App {
	app := cli.NewApp()
	app.Name = "larch"
	app.Usage = "parse, validate, and canonicalize aggregate command documents"
	app.Version = "0.1.0"

	app.Commands = []cli.Command{
		operations.Validate(),
		operations.Serve(),
	}

	return app
}
