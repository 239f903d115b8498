package payoutjob

import "errors"

var (
	ErrLocked = errors.New("payout generation is locked by another instance")
)
