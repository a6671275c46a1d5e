package jira

import "context"

// Session is the lifecycle wrapper around the tracker client. It has exactly
// two states: closed (the zero value, and again after Close) and open. Issue
// is only valid while open. Not safe for concurrent use.
type Session struct {
	opts   ClientOptions
	client *Client
}

// NewSession creates a closed session.
func NewSession(opts ClientOptions) *Session {
	return &Session{opts: opts}
}

// Open establishes the tracker connection. Any validation, transport, or
// auth failure is wrapped in *ConnectionError so callers depend only on this
// package's error taxonomy. A single connection attempt; no retries.
func (s *Session) Open(ctx context.Context, mode AuthMode, serverURL string) error {
	if s.client != nil {
		return &ConnectionError{Cause: ErrSessionAlreadyOpen}
	}
	client, err := Connect(ctx, mode, serverURL, s.opts)
	if err != nil {
		return &ConnectionError{Cause: err}
	}
	s.client = client
	return nil
}

// Issue looks up one issue by key. Calling it on a closed session returns
// ErrSessionNotConnected.
func (s *Session) Issue(ctx context.Context, key string) (*Issue, error) {
	if s.client == nil {
		return nil, ErrSessionNotConnected
	}
	return s.client.Issue(ctx, key)
}

// Close returns the session to the closed state. Closing a session that was
// never opened, or closing twice, is a no-op.
func (s *Session) Close() {
	if s.client != nil {
		s.client.httpClient.CloseIdleConnections()
		s.client = nil
	}
}
