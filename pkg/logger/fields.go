package logger

import "time"

// Common field constructors for structured logging

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field in milliseconds
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.Milliseconds()}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// --- Domain-specific field helpers ---

// UserID creates a user_id field
func UserID(id int64) Field {
	return Field{Key: "user_id", Value: id}
}

// EventID creates an event_id field
func EventID(id int64) Field {
	return Field{Key: "event_id", Value: id}
}

// PageID creates a page_id field
func PageID(id string) Field {
	return Field{Key: "page_id", Value: id}
}

// SectionID creates a section_id field
func SectionID(id string) Field {
	return Field{Key: "section_id", Value: id}
}

// StaffID creates a staff_id field
func StaffID(id int64) Field {
	return Field{Key: "staff_id", Value: id}
}

// Locale creates a locale field
func Locale(locale string) Field {
	return Field{Key: "locale", Value: locale}
}

// Component creates a component field
func Component(name string) Field {
	return Field{Key: "component", Value: name}
}

// Status creates a status field
func Status(status int) Field {
	return Field{Key: "status", Value: status}
}

// Method creates an HTTP method field
func Method(method string) Field {
	return Field{Key: "method", Value: method}
}

// Path creates an HTTP path field
func Path(path string) Field {
	return Field{Key: "path", Value: path}
}

// RemoteIP creates a remote_ip field
func RemoteIP(ip string) Field {
	return Field{Key: "remote_ip", Value: ip}
}

// Operation creates an operation field
func Operation(op string) Field {
	return Field{Key: "operation", Value: op}
}

// Count creates a count field
func Count(count int) Field {
	return Field{Key: "count", Value: count}
}

// CreatedCount creates a created_count field
func CreatedCount(count int) Field {
	return Field{Key: "created_count", Value: count}
}

// SkippedCount creates a skipped_count field
func SkippedCount(count int) Field {
	return Field{Key: "skipped_count", Value: count}
}

// FailedCount creates a failed_count field
func FailedCount(count int) Field {
	return Field{Key: "failed_count", Value: count}
}
