package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidNetworkFormat returned when a discovery target cannot be
// parsed as a CIDR block
var ErrInvalidNetworkFormat = errors.New("invalid network format")
