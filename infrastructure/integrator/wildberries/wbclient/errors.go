package wbclient

import "errors"

// ErrUnauthorized is returned when the statistics API rejects the key.
// The caller surfaces it with credential guidance instead of a generic
// transport failure.
var ErrUnauthorized = errors.New("wildberries api: invalid api key")
