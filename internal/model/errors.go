package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrEmptyPersonID         = errors.New("person id is empty")
	ErrDuplicatePerson       = errors.New("duplicate person id")
	ErrUnknownGuest          = errors.New("guest id does not match any person")
	ErrSelfInvite            = errors.New("person invites themselves")
	ErrPersonInMultiplePairs = errors.New("person appears in more than one pair")

	// Layout errors
	ErrInvalidLayout    = errors.New("invalid team layout")
	ErrInvalidTeamLabel = errors.New("invalid team label")

	// Allocation errors
	ErrCapacityMismatch = errors.New("total team capacity does not match roster size")
	ErrNoCapacity       = errors.New("no team has remaining capacity")

	// Run errors
	ErrRunNotFound = errors.New("allocation run not found")
)
