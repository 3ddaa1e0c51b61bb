package energy

import "errors"

// Error taxonomy for the core. Ingestion-path failures wrap
// ErrInvalidSample and are contained by the pipeline; query-path failures
// propagate to the transport layer, which maps them to responses.
var (
	ErrInvalidSample    = errors.New("invalid sample")
	ErrInvalidDate      = errors.New("invalid date")
	ErrUnknownMetric    = errors.New("unknown series metric")
	ErrEmptyScope       = errors.New("user owns no devices")
	ErrEmptyWindow      = errors.New("no readings in window")
	ErrStoreUnavailable = errors.New("store unavailable")
)
