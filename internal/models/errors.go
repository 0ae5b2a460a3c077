package models

import "errors"

var (
	// ErrGeneral covers database failures that users cannot do anything
	// about. The actual cause is logged, not returned.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrNotFound is wrapped with the resource name by the query callback.
	ErrNotFound = errors.New("there is no")

	// ErrReportExists is returned when a monthly report is created for an
	// owner and month that is already cached.
	ErrReportExists = errors.New("a report for this owner and month is already cached")

	ErrUserNameMissing = errors.New("the user name must be set")
)
