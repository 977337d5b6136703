package logger

// Standard field names for structured logging. Use these instead of raw
// strings so log queries stay stable.
const (
	FieldComponent = "component"
	FieldOperation = "operation"

	// Documents and imports
	FieldURI      = "uri"
	FieldAltURL   = "alt_url"
	FieldCacheURL = "cache_url"
	FieldDepth    = "depth"
	FieldCached   = "cached"

	// Ontology model
	FieldLanguage = "language"
	FieldFacet    = "facet"
	FieldNode     = "node"
	FieldTerm     = "term"
	FieldStrict   = "strict"

	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldFile       = "file"
	FieldError      = "error"
)
