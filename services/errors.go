package services

import "errors"

// Business-rule and workflow errors. Controllers translate these into the
// response envelope with errors.Is; nothing in this package writes HTTP
// status codes.
var (
	ErrSelfSwap            = errors.New("cannot send swap request to yourself")
	ErrDuplicatePending    = errors.New("a pending swap request already exists between these users")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileNotPublic    = errors.New("profile is not public")
	ErrSkillNotOwned       = errors.New("skill is not in the user's offered skills")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrUnauthorizedAction  = errors.New("you are not authorized to perform this action")
	ErrSwapNotFound        = errors.New("swap request not found")
	ErrConcurrencyConflict = errors.New("the swap request was modified concurrently, retry the operation")
)
