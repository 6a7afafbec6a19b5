package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrPlatform = "platform"
)
