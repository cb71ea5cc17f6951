package model

import "github.com/pkg/errors"

// ErrParseSkipped marks a corpus file that could not be read or parsed.
var ErrParseSkipped = errors.New("corpus file skipped")
