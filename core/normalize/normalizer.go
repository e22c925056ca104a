// Package normalize implements the Normalizer interface.
// It flattens an arbitrary decoded JSON value into the record list
// consumed by every renderer. Normalization never fails: unrecognized
// payload shapes degrade to zero items, and missing fields degrade to
// fallback literals.
package normalize

import (
	"fmt"
	"strconv"

	"github.com/gaurav-prasanna/reportpipe/core"
)

// Profile selects how item fields are read from the source mapping.
type Profile string

const (
	// ProfileFixed is the reference profile: status is always "published",
	// created_at is always empty, and the summary comes from the "body" field.
	ProfileFixed Profile = "fixed"
	// ProfileFlexible reads status, created_at, and summary from the source
	// where present, with "unknown" as the status fallback.
	ProfileFlexible Profile = "flexible"
)

// shape classifies the decoded payload, decided once at the entry of
// normalization.
type shape int

const (
	shapeEmpty shape = iota
	shapeSequence
	shapeSingleRecord
)

// RecordNormalizer flattens decoded JSON payloads into Reports.
type RecordNormalizer struct {
	profile Profile
}

// New creates a RecordNormalizer using the given profile.
// Unrecognized profiles fall back to ProfileFixed.
func New(profile Profile) *RecordNormalizer {
	if profile != ProfileFlexible {
		profile = ProfileFixed
	}
	return &RecordNormalizer{profile: profile}
}

// Normalize converts data into a Report. source is the endpoint the
// payload came from and is carried through as the report's origin.
func (n *RecordNormalizer) Normalize(data any, source string) core.Report {
	kind, candidates := classify(data)

	meta := core.ReportMeta{Source: source}
	if kind != shapeEmpty {
		meta.Count = len(candidates)
	}

	items := make([]core.ItemRecord, 0, len(candidates))
	for i, candidate := range candidates {
		obj, ok := candidate.(map[string]any)
		if !ok {
			// Non-mapping entries are dropped. The index keeps counting the
			// original position, so gaps can appear in the record sequence.
			continue
		}
		items = append(items, n.coerce(obj, i+1))
	}

	return core.Report{Meta: meta, Items: items}
}

// classify decides the payload shape: a JSON array is a sequence of
// candidates, a JSON object is a single candidate, everything else
// (scalar, null) contributes nothing.
func classify(data any) (shape, []any) {
	switch v := data.(type) {
	case []any:
		return shapeSequence, v
	case map[string]any:
		return shapeSingleRecord, []any{v}
	default:
		return shapeEmpty, nil
	}
}

// coerce flattens one mapping candidate into an ItemRecord.
func (n *RecordNormalizer) coerce(obj map[string]any, index int) core.ItemRecord {
	rec := core.ItemRecord{
		Index: index,
		ID:    stringField(obj, "id"),
		Title: stringField(obj, "title"),
	}
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("item-%d", index)
	}
	if rec.Title == "" {
		rec.Title = "(untitled)"
	}

	switch n.profile {
	case ProfileFlexible:
		rec.Status = stringField(obj, "status")
		if rec.Status == "" {
			rec.Status = "unknown"
		}
		rec.CreatedAt = firstField(obj, "created_at", "date")
		rec.Summary = firstField(obj, "summary", "description", "body")
	default:
		rec.Status = "published"
		rec.Summary = stringField(obj, "body")
	}
	return rec
}

// stringField returns obj[key] rendered as display text, or "" when the
// key is absent or null.
func stringField(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	return displayString(v)
}

// firstField returns the first non-empty of the given keys.
func firstField(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringField(obj, key); s != "" {
			return s
		}
	}
	return ""
}

// displayString renders a decoded JSON scalar the way it appeared in the
// source: integral numbers without a decimal point, booleans as true/false.
func displayString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
