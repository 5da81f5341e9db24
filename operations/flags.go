package operations

import (
	"strings"

	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	fileFlagName      = "file"
	namespaceFlagName = "namespace"
	verbosityFlagName = "verbosity"
	readOnlyFlagName  = "read-only"
	portFlagName      = "port"

	defaultServicePort = 3080
)

func joinFlagNames(ids ...string) string { return strings.Join(ids, ", ") }

func requireNamespaceFlag(c *cli.Context) error {
	if c.String(namespaceFlagName) == "" {
		return errors.Errorf("must specify --%s", namespaceFlagName)
	}
	return nil
}

func mergeBeforeFuncs(ops ...func(c *cli.Context) error) cli.BeforeFunc {
	return func(c *cli.Context) error {
		catcher := grip.NewBasicCatcher()

		for _, op := range ops {
			catcher.Add(op(c))
		}

		return catcher.Resolve()
	}
}
