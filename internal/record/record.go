package record

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Entries maps a label to the time it was last recorded, in milliseconds
// since the Unix epoch.
type Entries map[string]uint64

const (
	FieldSeparator  = ","
	RecordSeparator = "\n"

	ReasonInsufficientValues = "insufficient values"
	ReasonInvalidValue       = "invalid value"
)

var ErrInvalidLabel = errors.New("label must be non-empty and must not contain commas or line breaks")

// MalformedRecordError reports a line of the persisted text that could not
// be decoded. Line is 1-based.
type MalformedRecordError struct {
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Decode parses newline-delimited "label,timestamp" records.
//
// Blank lines are skipped. Only the first two comma-separated fields are
// read; anything after the second field is ignored. When a label appears on
// more than one line the last one wins.
func Decode(raw string) (Entries, error) {
	entries := make(Entries)

	for i, line := range strings.Split(raw, RecordSeparator) {
		line = strings.TrimSuffix(line, "\r")

		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.SplitN(line, FieldSeparator, 3)
		if len(fields) < 2 {
			return nil, &MalformedRecordError{Line: i + 1, Reason: ReasonInsufficientValues}
		}

		// A single leading '+' is accepted; signs are otherwise invalid.
		timestamp, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "+"), 10, 64)
		if err != nil {
			return nil, &MalformedRecordError{Line: i + 1, Reason: ReasonInvalidValue}
		}

		entries[fields[0]] = timestamp
	}

	return entries, nil
}

// Encode renders entries one "label,timestamp" line each, sorted by label.
func Encode(entries Entries) string {
	var sb strings.Builder

	for _, label := range slices.Sorted(maps.Keys(entries)) {
		sb.WriteString(label)
		sb.WriteString(FieldSeparator)
		sb.WriteString(strconv.FormatUint(entries[label], 10))
		sb.WriteString(RecordSeparator)
	}

	return sb.String()
}

// ValidateLabel reports whether label survives an Encode/Decode round trip.
func ValidateLabel(label string) error {
	if label == "" || strings.ContainsAny(label, FieldSeparator+"\r\n") {
		return ErrInvalidLabel
	}
	return nil
}
