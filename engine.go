package larch

import "sync/atomic"

// The read-only state of the underlying storage engine is process-wide.
// Parse reads it when validating allowDiskUse and never writes it.
var engineReadOnly atomic.Bool

// SetEngineReadOnly records whether the storage engine is running in
// read-only mode. Intended to be called once by the surrounding process
// during startup.
func SetEngineReadOnly(readOnly bool) { engineReadOnly.Store(readOnly) }

// EngineReadOnly reports the current engine mode.
func EngineReadOnly() bool { return engineReadOnly.Load() }
