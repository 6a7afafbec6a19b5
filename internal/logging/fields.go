package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldSeason     = "season"
	FieldDate       = "date"
	FieldTeam       = "team"
	FieldGame       = "game"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldPlatform   = "platform"
	FieldMissing    = "missing"
)
