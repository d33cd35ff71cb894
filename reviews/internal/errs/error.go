package errs

import (
	"errors"
)

var (
	ErrRatingsDisabled  = errors.New("ratings disabled")
	ErrRatingsStatus    = errors.New("unexpected ratings status")
	ErrInvalidProductID = errors.New("productId must be a non-negative integer")
	ErrStatsDropped     = errors.New("stats producer busy, event dropped")
	ErrStatsClosed      = errors.New("stats producer closed")
)
