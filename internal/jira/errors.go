package jira

import (
	"errors"
	"fmt"
)

// Credential strategy names reported by PartialCredentialsError.
const (
	StrategyBasic = "basic"
	StrategyOAuth = "oauth"
)

// ErrConflictingCredentials is returned by ResolveAuth when both the basic
// and the oauth credential sets are fully supplied.
var ErrConflictingCredentials = errors.New("conflicting credentials: both basic and oauth fully supplied")

// ErrSessionNotConnected is returned when an issue lookup is attempted on a
// session that was never opened or has already been closed.
var ErrSessionNotConnected = errors.New("tracker session is not connected")

// ErrSessionAlreadyOpen is returned (wrapped in *ConnectionError) when Open
// is called on a session that is already open.
var ErrSessionAlreadyOpen = errors.New("tracker session is already open")

// PartialCredentialsError reports a credential strategy with some but not
// all of its fields supplied.
type PartialCredentialsError struct {
	Strategy string // StrategyBasic or StrategyOAuth
}

func (e *PartialCredentialsError) Error() string {
	return fmt.Sprintf("partial %s credentials: supply all fields or none", e.Strategy)
}

// ConnectionError wraps the failure behind an unsuccessful Open attempt so
// callers depend on this package's taxonomy rather than the transport's
// native error types.
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("tracker connection failed: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// IssueNotFoundError reports a key the tracker has no issue for.
type IssueNotFoundError struct {
	Key string
}

func (e *IssueNotFoundError) Error() string {
	return fmt.Sprintf("issue %s not found in tracker", e.Key)
}
