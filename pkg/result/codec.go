package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldCase selects the naming convention of the canonical field names when
// encoding. Decoding accepts any convention.
type FieldCase uint8

const (
	CamelCase FieldCase = iota
	PascalCase
	SnakeCase
)

// ParseFieldCase maps "camel", "pascal" or "snake" to a FieldCase.
func ParseFieldCase(s string) (FieldCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "camel", "camelcase":
		return CamelCase, nil
	case "pascal", "pascalcase":
		return PascalCase, nil
	case "snake", "snake_case":
		return SnakeCase, nil
	}
	return CamelCase, fmt.Errorf("unknown field case %q", s)
}

// Canonical field names in camel case.
const (
	fieldError       = "error"
	fieldFailures    = "failures"
	fieldFailureType = "failureType"
	fieldResultType  = "resultType"
	fieldValue       = "value"
)

// Codec converts outcomes to and from the canonical wire shape:
//
//	{"error": "...", "failures": {"field": ["..."]}, "failureType": "None", "resultType": "Success"}
//
// Typed outcomes additionally carry "value" when they succeed.
type Codec struct {
	Case   FieldCase
	Indent string
}

// DefaultCodec is used by the json.Marshaler and yaml.Marshaler implementations.
var DefaultCodec = Codec{}

var titleCaser = cases.Title(language.Und, cases.NoLower)

func (c Codec) key(name string) string {
	switch c.Case {
	case PascalCase:
		return titleCaser.String(name)
	case SnakeCase:
		var b strings.Builder
		for i, r := range name {
			if unicode.IsUpper(r) {
				if i > 0 {
					b.WriteByte('_')
				}
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
		}
		return b.String()
	}
	return name
}

// Marshal encodes a non-generic outcome.
func (c Codec) Marshal(r Result) ([]byte, error) {
	return c.encode(r, nil)
}

// Unmarshal decodes a non-generic outcome. Any "value" field is ignored.
func (c Codec) Unmarshal(data []byte) (Result, error) {
	r, _, err := c.decode(data)
	return r, err
}

// MarshalOf encodes a typed outcome, writing "value" only on success.
func MarshalOf[T any](c Codec, r Of[T]) ([]byte, error) {
	if r.IsFailure() {
		return c.encode(r.outcome, nil)
	}
	value, err := json.Marshal(r.value)
	if err != nil {
		return nil, fmt.Errorf("encode outcome value: %w", err)
	}
	return c.encode(r.outcome, value)
}

// UnmarshalOf decodes a typed outcome. A successful payload whose value is
// missing decodes to the zero value, unless T is nillable, in which case the
// payload is rejected since a success never carries an absent value.
func UnmarshalOf[T any](c Codec, data []byte) (Of[T], error) {
	r, raw, err := c.decode(data)
	if err != nil {
		return Of[T]{}, err
	}
	if r.IsFailure() {
		return Of[T]{outcome: r}, nil
	}
	var value T
	if len(raw) > 0 && !isJSONNull(raw) {
		if err := json.Unmarshal(raw, &value); err != nil {
			return Of[T]{}, errors.Join(ErrMalformed, err)
		}
	}
	if isNil(value) {
		return Of[T]{}, fmt.Errorf("%w: success without value", ErrMalformed)
	}
	return Of[T]{outcome: r, value: value}, nil
}

func (c Codec) encode(r Result, value json.RawMessage) ([]byte, error) {
	failures := r.failures
	if failures == nil {
		failures = map[string][]string{}
	}

	fields := []struct {
		name  string
		value any
	}{
		{fieldError, r.message},
		{fieldFailures, failures},
		{fieldFailureType, r.failureType},
		{fieldResultType, r.resultType},
	}
	if value != nil {
		fields = append(fields, struct {
			name  string
			value any
		}{fieldValue, value})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(c.key(f.name))
		buf.Write(key)
		buf.WriteByte(':')
		v, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("encode outcome field %s: %w", f.name, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')

	if c.Indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", c.Indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (c Codec) decode(data []byte) (Result, json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Result{}, nil, fmt.Errorf("%w: root must be a JSON object", ErrMalformed)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return Result{}, nil, errors.Join(ErrMalformed, err)
	}
	fields := make(map[string]json.RawMessage, len(obj))
	for k, v := range obj {
		nk := normalizeKey(k)
		if _, dup := fields[nk]; dup {
			return Result{}, nil, fmt.Errorf("%w: duplicate field %q", ErrMalformed, nk)
		}
		fields[nk] = v
	}

	ft := FailureNone
	if raw, ok := fields[normalizeKey(fieldFailureType)]; ok && !isJSONNull(raw) {
		s, err := enumText(raw)
		if err != nil {
			return Result{}, nil, err
		}
		if ft, err = ParseFailureType(s); err != nil {
			return Result{}, nil, err
		}
	}

	var rt *ResultType
	if raw, ok := fields[normalizeKey(fieldResultType)]; ok && !isJSONNull(raw) {
		s, err := enumText(raw)
		if err != nil {
			return Result{}, nil, err
		}
		parsed, err := ParseResultType(s)
		if err != nil {
			return Result{}, nil, err
		}
		rt = &parsed
	}

	var message string
	if raw, ok := fields[normalizeKey(fieldError)]; ok && !isJSONNull(raw) {
		if err := json.Unmarshal(raw, &message); err != nil {
			return Result{}, nil, errors.Join(ErrMalformed, err)
		}
	}

	var failures map[string][]string
	if raw, ok := fields[normalizeKey(fieldFailures)]; ok && !isJSONNull(raw) {
		if err := json.Unmarshal(raw, &failures); err != nil {
			return Result{}, nil, errors.Join(ErrMalformed, err)
		}
	}

	value := fields[normalizeKey(fieldValue)]

	switch ft {
	case FailureNone:
		if rt != nil {
			return Success(WithResultType(*rt)), value, nil
		}
		return Success(), value, nil
	case FailureValidation:
		failures = cloneFailures(failures)
		if len(failures) == 0 {
			return Result{}, nil, fmt.Errorf("%w: validation failure without failures", ErrMalformed)
		}
		if message == "" {
			message = Summarize(failures, nil)
		}
		return newFailure(FailureValidation, message, failures, rt), nil, nil
	default:
		return newFailure(ft, message, nil, rt), nil, nil
	}
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(k, "_", ""))
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// enumText extracts the textual form of an enum written either as a string or
// as a number.
func enumText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", errors.Join(ErrMalformed, err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", errors.Join(ErrMalformed, err)
	}
	return n.String(), nil
}

func (r Result) MarshalJSON() ([]byte, error) {
	return DefaultCodec.Marshal(r)
}

func (r *Result) UnmarshalJSON(data []byte) error {
	decoded, err := DefaultCodec.Unmarshal(data)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

func (r Of[T]) MarshalJSON() ([]byte, error) {
	return MarshalOf(DefaultCodec, r)
}

func (r *Of[T]) UnmarshalJSON(data []byte) error {
	decoded, err := UnmarshalOf[T](DefaultCodec, data)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}
