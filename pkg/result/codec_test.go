package result_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/outcome/pkg/result"
)

func sampleOutcomes() map[string]result.Result {
	return map[string]result.Result{
		"success":     result.Success(),
		"information": result.Success(result.WithResultType(result.TypeInformation)),
		"failure":     result.Failure("boom"),
		"security":    result.SecurityFailure("denied"),
		"canceled":    result.CanceledFailure("stopped"),
		"validation": result.ValidationFailure(map[string][]string{
			"email": {"invalid", "taken"},
			"name":  {"required"},
		}, result.WithMessage("custom summary")),
	}
}

func assertSameOutcome(t *testing.T, want, got result.Result) {
	t.Helper()
	assert.Equal(t, want.IsSuccess(), got.IsSuccess())
	assert.Equal(t, want.ResultType(), got.ResultType())
	assert.Equal(t, want.FailureType(), got.FailureType())
	assert.Equal(t, want.ErrorMessage(), got.ErrorMessage())
	assert.Equal(t, want.Failures(), got.Failures())
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	codecs := map[string]result.Codec{
		"camel":  {},
		"pascal": {Case: result.PascalCase, Indent: "  "},
		"snake":  {Case: result.SnakeCase},
	}

	for codecName, codec := range codecs {
		for name, r := range sampleOutcomes() {
			t.Run(codecName+"/"+name, func(t *testing.T) {
				t.Parallel()
				data, err := codec.Marshal(r)
				require.NoError(t, err)

				// Decoding ignores the naming convention.
				got, err := result.DefaultCodec.Unmarshal(data)
				require.NoError(t, err)
				assertSameOutcome(t, r, got)

				yml, err := codec.MarshalYAML(r)
				require.NoError(t, err)
				got, err = codec.UnmarshalYAML(yml)
				require.NoError(t, err)
				assertSameOutcome(t, r, got)
			})
		}
	}
}

func TestCodecShape(t *testing.T) {
	t.Parallel()

	t.Run("camel case failure", func(t *testing.T) {
		data, err := json.Marshal(result.ValidationFailure(map[string][]string{"name": {"required"}}))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"error": "name: required",
			"failures": {"name": ["required"]},
			"failureType": "Validation",
			"resultType": "Error"
		}`, string(data))
	})

	t.Run("pascal case", func(t *testing.T) {
		data, err := result.Codec{Case: result.PascalCase}.Marshal(result.Success())
		require.NoError(t, err)
		assert.JSONEq(t, `{"Error":"","Failures":{},"FailureType":"None","ResultType":"Success"}`, string(data))
	})

	t.Run("snake case", func(t *testing.T) {
		data, err := result.Codec{Case: result.SnakeCase}.Marshal(result.CanceledFailure("stop"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"stop","failures":{},"failure_type":"OperationCanceled","result_type":"Warning"}`, string(data))
	})

	t.Run("typed success writes value", func(t *testing.T) {
		data, err := json.Marshal(result.SuccessOf(user{Name: "ann"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"","failures":{},"failureType":"None","resultType":"Success","value":{"name":"ann"}}`, string(data))
	})

	t.Run("non-generic outcome omits value", func(t *testing.T) {
		data, err := json.Marshal(result.SuccessOf(user{Name: "ann"}).Result())
		require.NoError(t, err)
		assert.NotContains(t, string(data), "value")
	})

	t.Run("typed failure omits value", func(t *testing.T) {
		data, err := json.Marshal(result.FailureOf[user]("boom"))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "value")
	})
}

func TestCodecDecode(t *testing.T) {
	t.Parallel()

	t.Run("missing fields decode to success", func(t *testing.T) {
		var r result.Result
		require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
		assert.True(t, r.IsSuccess())
		assert.Equal(t, result.TypeSuccess, r.ResultType())
	})

	t.Run("duplicate spellings are rejected", func(t *testing.T) {
		for range 20 {
			_, err := result.DefaultCodec.Unmarshal([]byte(`{"failureType":"Error","failure_type":"None","error":"x"}`))
			require.ErrorIs(t, err, result.ErrMalformed)
		}
	})

	t.Run("ordinals are accepted", func(t *testing.T) {
		r, err := result.DefaultCodec.Unmarshal([]byte(`{"error":"denied","failureType":2,"resultType":"1"}`))
		require.NoError(t, err)
		assert.Equal(t, result.FailureSecurity, r.FailureType())
		assert.Equal(t, result.TypeInformation, r.ResultType())
	})

	t.Run("failure without result type uses default severity", func(t *testing.T) {
		r, err := result.DefaultCodec.Unmarshal([]byte(`{"error":"stop","failureType":"OperationCanceled"}`))
		require.NoError(t, err)
		assert.Equal(t, result.TypeWarning, r.ResultType())
	})

	t.Run("validation without message is summarized", func(t *testing.T) {
		r, err := result.DefaultCodec.Unmarshal([]byte(`{"FAILURES":{"a":["x"]},"failure_type":"validation"}`))
		require.NoError(t, err)
		assert.Equal(t, "a: x", r.ErrorMessage())
	})

	t.Run("typed value", func(t *testing.T) {
		var r result.Of[user]
		require.NoError(t, json.Unmarshal([]byte(`{"failureType":"None","value":{"name":"bob"}}`), &r))
		assert.Equal(t, "bob", r.MustValue().Name)
	})

	t.Run("typed success without nillable value is rejected", func(t *testing.T) {
		_, err := result.UnmarshalOf[*user](result.DefaultCodec, []byte(`{"failureType":"None"}`))
		assert.ErrorIs(t, err, result.ErrMalformed)
	})

	malformed := map[string]string{
		"array root":                  `[]`,
		"null root":                   `null`,
		"string root":                 `"x"`,
		"truncated":                   `{"error": "x"`,
		"empty":                       ``,
		"unknown failure type":        `{"failureType":"Fatal"}`,
		"out of range ordinal":        `{"resultType":7}`,
		"validation without failures": `{"failureType":"Validation","error":"x"}`,
		"bad failures shape":          `{"failures":["x"]}`,
	}
	for name, payload := range malformed {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := result.DefaultCodec.Unmarshal([]byte(payload))
			assert.ErrorIs(t, err, result.ErrMalformed)
		})
	}
}

func TestYAMLMarshaler(t *testing.T) {
	t.Parallel()

	type envelope struct {
		Outcome result.Result `yaml:"outcome"`
	}

	in := envelope{Outcome: result.ValidationFailure(map[string][]string{"name": {"required"}})}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "failureType: Validation")

	var out envelope
	require.NoError(t, yaml.Unmarshal(data, &out))
	assertSameOutcome(t, in.Outcome, out.Outcome)

	typed, err := result.MarshalYAMLOf(result.DefaultCodec, result.SuccessOf(user{Name: "ann"}))
	require.NoError(t, err)
	back, err := result.UnmarshalYAMLOf[user](result.DefaultCodec, typed)
	require.NoError(t, err)
	assert.Equal(t, "ann", back.MustValue().Name)

	_, err = result.DefaultCodec.UnmarshalYAML([]byte("- a\n- b\n"))
	assert.ErrorIs(t, err, result.ErrMalformed)
}
