package model

import "errors"

// ErrInsufficientData reports a series with fewer bars than a computation
// requires (indicator warm-up, regime window, or an empty fetch result).
// It propagates as "cannot compute", not a crash: callers present unknown
// regime / empty trade lists rather than aborting the pipeline.
var ErrInsufficientData = errors.New("empty or insufficient data")
