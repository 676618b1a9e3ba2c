package result

import (
	"fmt"
	"strconv"
	"strings"
)

// ResultType is the severity attached to an outcome, independent of whether it
// succeeded.
type ResultType uint8

const (
	TypeSuccess ResultType = iota
	TypeInformation
	TypeWarning
	TypeError
)

var resultTypeNames = [...]string{"Success", "Information", "Warning", "Error"}

func (t ResultType) String() string {
	if int(t) < len(resultTypeNames) {
		return resultTypeNames[t]
	}
	return "ResultType(" + strconv.Itoa(int(t)) + ")"
}

// IsValid reports whether t is one of the declared result types.
func (t ResultType) IsValid() bool {
	return int(t) < len(resultTypeNames)
}

func (t ResultType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: unknown result type %d", ErrMalformed, t)
	}
	return []byte(t.String()), nil
}

func (t *ResultType) UnmarshalText(text []byte) error {
	v, err := ParseResultType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseResultType accepts either the name (case-insensitive) or the ordinal.
func ParseResultType(s string) (ResultType, error) {
	i, err := parseEnum(s, resultTypeNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: result type %q", ErrMalformed, s)
	}
	return ResultType(i), nil
}

// FailureType classifies why an outcome failed. None iff the outcome is a success.
type FailureType uint8

const (
	FailureNone FailureType = iota
	FailureError
	FailureSecurity
	FailureValidation
	FailureOperationCanceled
)

var failureTypeNames = [...]string{"None", "Error", "Security", "Validation", "OperationCanceled"}

func (t FailureType) String() string {
	if int(t) < len(failureTypeNames) {
		return failureTypeNames[t]
	}
	return "FailureType(" + strconv.Itoa(int(t)) + ")"
}

// IsValid reports whether t is one of the declared failure types.
func (t FailureType) IsValid() bool {
	return int(t) < len(failureTypeNames)
}

func (t FailureType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: unknown failure type %d", ErrMalformed, t)
	}
	return []byte(t.String()), nil
}

func (t *FailureType) UnmarshalText(text []byte) error {
	v, err := ParseFailureType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseFailureType accepts either the name (case-insensitive) or the ordinal.
func ParseFailureType(s string) (FailureType, error) {
	i, err := parseEnum(s, failureTypeNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: failure type %q", ErrMalformed, s)
	}
	return FailureType(i), nil
}

func parseEnum(s string, names []string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= len(names) {
			return 0, strconv.ErrRange
		}
		return n, nil
	}
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, strconv.ErrSyntax
}
