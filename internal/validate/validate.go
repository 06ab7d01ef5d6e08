// Package validate holds the pure input checks shared by the domain and service layers.
package validate

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/buger/jsonparser"
	"github.com/google/uuid"
)

// canonicalUUIDLength is the length of the 8-4-4-4-12 textual form.
const canonicalUUIDLength = 36

var colorHexPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// FormatError reports a value that does not have the expected textual shape.
type FormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid format '%s': %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// ColorHex accepts "#RGB" and "#RRGGBB" in any case and returns the value unchanged.
func ColorHex(s string) (string, error) {
	if !colorHexPattern.MatchString(s) {
		return "", &FormatError{Value: s, Reason: "invalid color hex"}
	}
	return s, nil
}

// UUID accepts only the canonical hyphenated form.
func UUID(s string) error {
	_, err := ParseUUID(s)
	return err
}

// ParseUUID is UUID that also returns the parsed identifier.
func ParseUUID(s string) (uuid.UUID, error) {
	if len(s) != canonicalUUIDLength {
		return uuid.Nil, &FormatError{Value: s, Reason: "invalid UUID"}
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &FormatError{Value: s, Reason: "invalid UUID"}
	}
	return id, nil
}

// UUIDCollection decodes a JSON array of UUID strings. Only whitespace may follow the array.
// It stops at the first element that is not a string or not a canonical UUID.
func UUIDCollection(jsonText string) ([]uuid.UUID, error) {
	data := []byte(jsonText)

	_, dataType, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, &FormatError{Value: jsonText, Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}
	if len(bytes.TrimSpace(data[end:])) > 0 {
		return nil, &FormatError{Value: jsonText, Reason: "malformed JSON: unexpected data after the array"}
	}
	if dataType != jsonparser.Array {
		return nil, &FormatError{Value: jsonText, Reason: "expected a JSON array of UUID strings"}
	}

	ids := make([]uuid.UUID, 0)
	index := 0
	var elementErr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, valueType jsonparser.ValueType, _ int, parseErr error) {
		defer func() { index++ }()
		if elementErr != nil {
			return
		}
		if parseErr != nil {
			elementErr = &FormatError{Value: jsonText, Reason: fmt.Sprintf("malformed JSON at element %d: %v", index, parseErr)}
			return
		}
		if valueType != jsonparser.String {
			elementErr = &FormatError{Value: string(value), Reason: fmt.Sprintf("element %d is not a string", index)}
			return
		}
		text, unescapeErr := jsonparser.ParseString(value)
		if unescapeErr != nil {
			elementErr = &FormatError{Value: string(value), Reason: fmt.Sprintf("element %d: %v", index, unescapeErr)}
			return
		}
		id, parseUUIDErr := ParseUUID(text)
		if parseUUIDErr != nil {
			elementErr = &FormatError{Value: text, Reason: fmt.Sprintf("invalid UUID at element %d", index)}
			return
		}
		ids = append(ids, id)
	})
	if elementErr != nil {
		return nil, elementErr
	}
	if err != nil {
		return nil, &FormatError{Value: jsonText, Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}

	return ids, nil
}

// WithField returns err with the field name attached when it is a *FormatError.
func WithField(err error, field string) error {
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		annotated := *formatErr
		annotated.Field = field
		return &annotated
	}
	return err
}
