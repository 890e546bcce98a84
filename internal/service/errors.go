package service

import "errors"

// Cross-cutting sentinels shared by the domain services. Entity-specific
// sentinels live next to the service that owns them.
var (
	// ErrForbidden means the caller's role does not permit the operation.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	// ErrNotMember means the caller does not belong to the organization at all.
	ErrNotMember = errors.New("you are not a member of this organization")
)
