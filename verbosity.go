package larch

import "github.com/pkg/errors"

// Verbosity is the explain verbosity requested for an aggregation.
// VerbosityNone means the request is a normal cursor-returning
// aggregation, not an explain.
type Verbosity int

const (
	VerbosityNone Verbosity = iota
	VerbosityQueryPlanner
	VerbosityExecStats
	VerbosityAllPlansExecution
)

const (
	queryPlannerName      = "queryPlanner"
	execStatsName         = "executionStats"
	allPlansExecutionName = "allPlansExecution"
)

func (v Verbosity) String() string {
	switch v {
	case VerbosityQueryPlanner:
		return queryPlannerName
	case VerbosityExecStats:
		return execStatsName
	case VerbosityAllPlansExecution:
		return allPlansExecutionName
	default:
		return "none"
	}
}

// ParseVerbosity resolves the wire spelling of an explain verbosity.
func ParseVerbosity(name string) (Verbosity, error) {
	switch name {
	case queryPlannerName:
		return VerbosityQueryPlanner, nil
	case execStatsName:
		return VerbosityExecStats, nil
	case allPlansExecutionName:
		return VerbosityAllPlansExecution, nil
	default:
		return VerbosityNone, errors.Errorf("verbosity string must be one of {'%s', '%s', '%s'}",
			queryPlannerName, execStatsName, allPlansExecutionName)
	}
}
