package domain

import "errors"

// ErrInvalidToken covers every token verification failure: bad signature,
// wrong algorithm, malformed payload, or expiry. Callers map it to 401 or
// 403 based on where in the request the failure occurred, not on the kind
// of failure.
var ErrInvalidToken = errors.New("invalid token")
