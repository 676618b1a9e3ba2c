package httpresult

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/outcome/pkg/result"
)

// StatusClientClosedRequest is the non-standard status used for cancelled
// operations.
const StatusClientClosedRequest = 499

// Response renders an outcome onto an HTTP response.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Option configures a Response.
type Option func(*options)

type options struct {
	status int
	codec  result.Codec
}

// WithStatus forces the HTTP status instead of deriving it from the outcome.
func WithStatus(code int) Option {
	return func(o *options) { o.status = code }
}

// WithCodec sets the codec used for the body. The default is
// result.DefaultCodec.
func WithCodec(c result.Codec) Option {
	return func(o *options) { o.codec = c }
}

// StatusFor maps an outcome to an HTTP status code.
func StatusFor(r result.Result) int {
	switch r.FailureType() {
	case result.FailureNone:
		return http.StatusOK
	case result.FailureValidation:
		return http.StatusUnprocessableEntity
	case result.FailureSecurity:
		return http.StatusForbidden
	case result.FailureOperationCanceled:
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

type response struct {
	status int
	encode func() ([]byte, error)
}

func (j response) Render(w http.ResponseWriter, _ *http.Request) error {
	body, err := j.encode()
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err = w.Write(append(body, '\n'))
	return err
}

// JSON renders res in the canonical outcome shape.
func JSON(res result.Result, opts ...Option) Response {
	o := apply(res, opts)
	return response{
		status: o.status,
		encode: func() ([]byte, error) { return o.codec.Marshal(res) },
	}
}

// JSONOf renders res in the canonical outcome shape including its value.
func JSONOf[T any](res result.Of[T], opts ...Option) Response {
	o := apply(res.Result(), opts)
	return response{
		status: o.status,
		encode: func() ([]byte, error) { return result.MarshalOf(o.codec, res) },
	}
}

// Handler adapts a function producing a Response to http.Handler. An encode
// failure is answered with a bare 500. A write error after the header was
// sent cannot be reported and is dropped.
func Handler(fn func(r *http.Request) Response) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r).Render(w, r); errors.Is(err, ErrEncode) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}

func apply(res result.Result, opts []Option) options {
	o := options{codec: result.DefaultCodec}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.status == 0 {
		o.status = StatusFor(res)
	}
	return o
}
