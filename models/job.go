package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Well-known JobRecord fields
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldJobType     = "job_type"
	FieldIsRemote    = "is_remote"
	FieldMatchScore  = "match_score"
	FieldMatchReason = "match_reason"
)

// JobRecord is a single posting as returned by the scraper. Fields other than
// the well-known ones are passed through to the client untouched.
type JobRecord map[string]interface{}

// Text returns the string value stored under field.
// Missing keys, nulls and NaN placeholders read as "". ok is false when the
// field holds a value that is not text at all.
func (j JobRecord) Text(field string) (value string, ok bool) {
	raw, exists := j[field]
	if !exists || raw == nil {
		return "", true
	}

	switch v := raw.(type) {
	case string:
		return v, true
	case float64:
		if math.IsNaN(v) {
			return "", true
		}
	case float32:
		if math.IsNaN(float64(v)) {
			return "", true
		}
	}
	return "", false
}

// TextOrEmpty is Text with non-text values read as "".
func (j JobRecord) TextOrEmpty(field string) string {
	v, _ := j.Text(field)
	return v
}

// IsRemote reports whether the is_remote field is truthy.
func (j JobRecord) IsRemote() bool {
	return Truthy(j[FieldIsRemote])
}

// Clone returns a shallow copy of the record.
func (j JobRecord) Clone() JobRecord {
	out := make(JobRecord, len(j)+2)
	for k, v := range j {
		out[k] = v
	}
	return out
}

// Truthy evaluates a loosely typed flag the way scraper output encodes it:
// booleans as-is, numbers when non-zero, strings via strconv.ParseBool with
// any other non-empty string counting as true.
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int64:
		return t != 0
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return false
		}
		if parsed, err := strconv.ParseBool(s); err == nil {
			return parsed
		}
		return true
	default:
		return fmt.Sprint(t) != ""
	}
}
