package httpresult

import "errors"

// ErrEncode is returned by Render when the body could not be encoded. Nothing
// has been written to the response in that case.
var ErrEncode = errors.New("httpresult: failed to encode outcome")
