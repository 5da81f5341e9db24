package larch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerbosity(t *testing.T) {
	for _, v := range []Verbosity{VerbosityQueryPlanner, VerbosityExecStats, VerbosityAllPlansExecution} {
		parsed, err := ParseVerbosity(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	for _, name := range []string{"", "none", "queryplanner", "bogus"} {
		_, err := ParseVerbosity(name)
		assert.Error(t, err, name)
	}
}
