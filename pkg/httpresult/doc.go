// Package httpresult writes result outcomes as HTTP JSON responses.
//
// The body is the canonical outcome shape produced by result.Codec. The
// status is derived from the failure type: 200 for success, 422 for
// validation failures, 403 for security failures, 499 for cancellations and
// 500 for anything else. WithStatus overrides it.
//
//	http.Handle("/users", httpresult.Handler(func(r *http.Request) httpresult.Response {
//	    return httpresult.JSONOf(createUser(r))
//	}))
package httpresult
