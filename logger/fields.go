package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldMethod    = "method"
	FieldURI       = "uri"
	FieldStatus    = "status"
	FieldType      = "resource_type"
	FieldError     = "error"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	log.Debug("request", logger.Fields(logger.FieldMethod, "GET", logger.FieldURI, uri))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
