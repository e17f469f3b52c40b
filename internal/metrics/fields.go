package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod     = "method"
	AttrPath       = "path"
	AttrStatus     = "status"
	AttrProvider   = "provider"
	AttrOperation  = "operation"
	AttrOutcome    = "outcome"
	AttrSeasonType = "season_type"
)

// Search outcomes reported by RecordSearch.
const (
	OutcomePopulated  = "populated"
	OutcomeEmpty      = "empty"
	OutcomeNotFound   = "not_found"
	OutcomeMalformed  = "malformed_input"
	OutcomeFailed     = "fetch_failed"
	OutcomeSuperseded = "superseded"
)
