package models

import "encoding/json"

// RawRecord is one scraped document exactly as returned by the scraper
// collaborator, prior to mapping into a persisted entity.
type RawRecord map[string]interface{}

// StringField returns the string value under key. The second return value is
// false when the key is absent or holds a non-string value.
func (r RawRecord) StringField(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// StringOr returns the string value under key, or fallback when absent.
func (r RawRecord) StringOr(key, fallback string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return fallback
}

// IntOr returns the numeric value under key as an int, or fallback when the
// key is absent or not numeric. JSON decoding yields float64 for numbers, so
// that is the common case.
func (r RawRecord) IntOr(key string, fallback int) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return fallback
}

// Child returns the nested document under key.
func (r RawRecord) Child(key string) (RawRecord, bool) {
	switch v := r[key].(type) {
	case map[string]interface{}:
		return RawRecord(v), true
	case RawRecord:
		return v, true
	}
	return nil, false
}

// Payload returns the record as a storable document.
func (r RawRecord) Payload() Payload {
	return Payload(r)
}
