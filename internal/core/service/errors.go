package service

import "errors"

var (
	// ErrUnauthenticated means the caller presented no identity at all.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrUserNotFound means the caller's identity has no matching user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrOrganizationNotFound means a membership event referenced an
	// organization that was never synced.
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrNoMembership means the caller has no membership in the target
	// organization, or no default organization when none was specified.
	ErrNoMembership = errors.New("no organization membership found")

	// ErrInactiveMembership means a membership exists but is not active.
	ErrInactiveMembership = errors.New("no active membership in organization")

	// ErrInsufficientPermissions means the caller's role ranks below the
	// role required for the operation.
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
