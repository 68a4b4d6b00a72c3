// File: boolean.go
// Title: Boolean Marker Conversion
// Description: Maps booleans to single string markers ("Y"/"N" by default)
//              and back, as found in legacy flat files and database columns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	coreerror "github.com/murtho/utility/core/error"
)

const (
	// TrueKey is the MarkerMap key holding the marker for true
	TrueKey = 1

	// FalseKey is the MarkerMap key holding the marker for false
	FalseKey = 0

	// DefaultTrueMarker and DefaultFalseMarker make up the default map
	DefaultTrueMarker  = "Y"
	DefaultFalseMarker = "N"
)

// MarkerMap maps TrueKey and FalseKey to the strings representing true and
// false. A nil MarkerMap stands for the default {1: "Y", 0: "N"}.
type MarkerMap map[int]string

// DefaultMarkerMap returns a new copy of the default marker map
func DefaultMarkerMap() MarkerMap {
	return MarkerMap{
		TrueKey:  DefaultTrueMarker,
		FalseKey: DefaultFalseMarker,
	}
}

// NewMarkerMap builds a complete marker map from the two markers
func NewMarkerMap(trueMarker, falseMarker string) MarkerMap {
	return MarkerMap{
		TrueKey:  trueMarker,
		FalseKey: falseMarker,
	}
}

var (
	// ErrIncompleteMap matches, via errors.Is, every error returned for a
	// marker map lacking TrueKey or FalseKey
	ErrIncompleteMap = coreerror.New("character map is incomplete").WithCode(coreerror.CodeIncompleteMap)

	// ErrInvalidCharacter matches, via errors.Is, every error returned by
	// StringToBoolean for a value that is not a marker
	ErrInvalidCharacter = coreerror.New("invalid char provided").WithCode(coreerror.CodeInvalidCharacter)
)

// Validate checks that both TrueKey and FalseKey are present. Marker values
// are not checked; duplicates are accepted.
func (m MarkerMap) Validate() error {
	return m.validate("stringx.MarkerMap.Validate")
}

func (m MarkerMap) validate(operation string) error {
	var missing []int
	for _, key := range []int{TrueKey, FalseKey} {
		if _, ok := m[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return coreerror.New("character map is incomplete").
		WithCode(coreerror.CodeIncompleteMap).
		WithOperation(operation).
		WithDetail("missing_keys", missing)
}

// resolve substitutes the default for a nil map and validates the result
func (m MarkerMap) resolve(operation string) (MarkerMap, error) {
	if m == nil {
		return DefaultMarkerMap(), nil
	}
	if err := m.validate(operation); err != nil {
		return nil, err
	}
	return m, nil
}

// BooleanToString returns the marker for value. A nil markers map selects
// the default map. The error matches ErrIncompleteMap when markers lacks
// either key.
//
// Example: BooleanToString(false, nil) -> "N"
func BooleanToString(value bool, markers MarkerMap) (string, error) {
	m, err := markers.resolve("stringx.BooleanToString")
	if err != nil {
		return "", err
	}

	if value {
		return m[TrueKey], nil
	}
	return m[FalseKey], nil
}

// StringToBoolean is the inverse of BooleanToString. The true marker is
// compared first, so a map using the same marker twice resolves it to true.
// The error matches ErrIncompleteMap for an incomplete map and
// ErrInvalidCharacter when value is neither marker.
//
// Example: StringToBoolean("Y", nil) -> true
func StringToBoolean(value string, markers MarkerMap) (bool, error) {
	m, err := markers.resolve("stringx.StringToBoolean")
	if err != nil {
		return false, err
	}

	switch value {
	case m[TrueKey]:
		return true, nil
	case m[FalseKey]:
		return false, nil
	default:
		return false, coreerror.New("invalid char provided").
			WithCode(coreerror.CodeInvalidCharacter).
			WithOperation("stringx.StringToBoolean").
			WithDetail("value", value).
			WithDetail("true_marker", m[TrueKey]).
			WithDetail("false_marker", m[FalseKey])
	}
}

// IsIncompleteMap reports whether err was caused by an incomplete marker map
func IsIncompleteMap(err error) bool {
	return coreerror.HasCode(err, coreerror.CodeIncompleteMap)
}

// IsInvalidCharacter reports whether err was caused by a value that is not
// a marker
func IsInvalidCharacter(err error) bool {
	return coreerror.HasCode(err, coreerror.CodeInvalidCharacter)
}
