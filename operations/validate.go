package operations

import (
	"fmt"
	"io"
	"os"

	"github.com/evergreen-ci/larch"
	"github.com/evergreen-ci/larch/namespace"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.mongodb.org/mongo-driver/bson"
)

// Validate returns the command that parses an aggregate command document
// and prints its canonical form.
func Validate() cli.Command {
	return cli.Command{
		Name:  "validate",
		Usage: "parse an aggregate command document and print its canonical form",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  joinFlagNames(namespaceFlagName, "n"),
				Usage: "fully qualified 'database.collection' namespace",
			},
			cli.StringFlag{
				Name:  joinFlagNames(fileFlagName, "f"),
				Usage: "path to the command document as extended JSON; reads stdin when unset",
			},
			cli.StringFlag{
				Name:  verbosityFlagName,
				Usage: "explain verbosity supplied by an outer explain envelope",
			},
			cli.BoolFlag{
				Name:  readOnlyFlagName,
				Usage: "validate as if the storage engine were read-only",
			},
		},
		Before: mergeBeforeFuncs(requireNamespaceFlag),
		Action: func(c *cli.Context) error {
			ns, err := namespace.Parse(c.String(namespaceFlagName))
			if err != nil {
				return errors.Wrap(err, "parsing namespace")
			}

			verbosity := larch.VerbosityNone
			if v := c.String(verbosityFlagName); v != "" {
				verbosity, err = larch.ParseVerbosity(v)
				if err != nil {
					return errors.Wrap(err, "parsing verbosity")
				}
			}

			larch.SetEngineReadOnly(c.Bool(readOnlyFlagName))

			input, err := readCommandInput(c.String(fileFlagName))
			if err != nil {
				return err
			}

			var doc bson.D
			if err := bson.UnmarshalExtJSON(input, false, &doc); err != nil {
				return errors.Wrap(err, "parsing command document")
			}
			cmd, err := bson.Marshal(doc)
			if err != nil {
				return errors.Wrap(err, "converting command document")
			}

			req, err := larch.Parse(ns, cmd, verbosity)
			if err != nil {
				return errors.Wrap(err, "validating aggregate command")
			}

			out, err := bson.MarshalExtJSONIndent(req.Document(), false, false, "", "  ")
			if err != nil {
				return errors.Wrap(err, "rendering canonical command")
			}
			fmt.Println(string(out))

			grip.Debug(message.Fields{
				"message":    "aggregate command validated",
				"namespace":  ns.String(),
				"stages":     len(req.Pipeline()),
				"batch_size": req.BatchSize(),
				"explain":    req.Explain() != larch.VerbosityNone,
			})

			return nil
		},
	}
}

func readCommandInput(path string) ([]byte, error) {
	if path == "" {
		input, err := io.ReadAll(os.Stdin)
		return input, errors.Wrap(err, "reading command document from stdin")
	}

	input, err := os.ReadFile(path)
	return input, errors.Wrapf(err, "reading command document from file '%s'", path)
}
