package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTracker serves just enough of the REST surface: the connect probes and
// a fixed set of issues.
func fakeTracker(t *testing.T, issues map[string]Issue, wantAuth string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/serverinfo", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"serverTitle": "fake"})
	})
	mux.HandleFunc("/rest/api/2/myself", func(w http.ResponseWriter, r *http.Request) {
		if wantAuth != "" && r.Header.Get("Authorization") != wantAuth {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"name": "jdoe"})
	})
	mux.HandleFunc("/rest/api/2/issue/", func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path[len("/rest/api/2/issue/"):]
		issue, ok := issues[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(issue)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSession_OpenAnonymous(t *testing.T) {
	srv := fakeTracker(t, nil, "")
	session := NewSession(ClientOptions{})

	err := session.Open(context.Background(), AuthMode{Kind: AuthAnonymous}, srv.URL)
	require.NoError(t, err)
	session.Close()
}

func TestSession_OpenBasicAuthRejected(t *testing.T) {
	srv := fakeTracker(t, nil, "Basic anVzdDp0ZXN0aW5n")
	session := NewSession(ClientOptions{})

	mode, err := ResolveAuth(Credentials{Username: "jdoe", Password: "wrong"})
	require.NoError(t, err)

	err = session.Open(context.Background(), mode, srv.URL)
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestSession_OpenUnreachable(t *testing.T) {
	srv := fakeTracker(t, nil, "")
	srv.Close()
	session := NewSession(ClientOptions{})

	err := session.Open(context.Background(), AuthMode{Kind: AuthAnonymous}, srv.URL)
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Error(t, connErr.Unwrap())
}

func TestSession_OpenBadURL(t *testing.T) {
	session := NewSession(ClientOptions{})

	err := session.Open(context.Background(), AuthMode{Kind: AuthAnonymous}, "issues.example.com")
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestSession_IssueWhileClosed(t *testing.T) {
	session := NewSession(ClientOptions{})

	_, err := session.Issue(context.Background(), "LPE-10001")
	assert.ErrorIs(t, err, ErrSessionNotConnected)
}

func TestSession_IssueAfterClose(t *testing.T) {
	srv := fakeTracker(t, nil, "")
	session := NewSession(ClientOptions{})
	require.NoError(t, session.Open(context.Background(), AuthMode{Kind: AuthAnonymous}, srv.URL))

	session.Close()

	_, err := session.Issue(context.Background(), "LPE-10001")
	assert.ErrorIs(t, err, ErrSessionNotConnected)
}

func TestSession_CloseIdempotent(t *testing.T) {
	srv := fakeTracker(t, nil, "")
	session := NewSession(ClientOptions{})

	// Closing a never-opened session is a no-op.
	session.Close()

	require.NoError(t, session.Open(context.Background(), AuthMode{Kind: AuthAnonymous}, srv.URL))
	session.Close()
	session.Close()
}

func TestSession_DoubleOpen(t *testing.T) {
	srv := fakeTracker(t, nil, "")
	session := NewSession(ClientOptions{})
	require.NoError(t, session.Open(context.Background(), AuthMode{Kind: AuthAnonymous}, srv.URL))
	defer session.Close()

	err := session.Open(context.Background(), AuthMode{Kind: AuthAnonymous}, srv.URL)
	assert.ErrorIs(t, err, ErrSessionAlreadyOpen)
}

func TestSession_IssueFound(t *testing.T) {
	srv := fakeTracker(t, map[string]Issue{
		"LPE-10001": {
			Key: "LPE-10001",
			Fields: IssueFields{IssueLinks: []IssueLink{
				{InwardIssue: &LinkedIssue{Key: "LPS-41798"}},
				{OutwardIssue: &LinkedIssue{Key: "LPE-99"}},
			}},
		},
	}, "")
	session := NewSession(ClientOptions{})
	require.NoError(t, session.Open(context.Background(), AuthMode{Kind: AuthAnonymous}, srv.URL))
	defer session.Close()

	issue, err := session.Issue(context.Background(), "LPE-10001")
	require.NoError(t, err)
	require.Len(t, issue.Fields.IssueLinks, 2)
	require.NotNil(t, issue.Fields.IssueLinks[0].InwardIssue)
	assert.Equal(t, "LPS-41798", issue.Fields.IssueLinks[0].InwardIssue.Key)
	assert.Equal(t, "LPS", issue.Fields.IssueLinks[0].InwardIssue.Project())
	assert.Nil(t, issue.Fields.IssueLinks[0].OutwardIssue)
}

func TestSession_IssueNotFound(t *testing.T) {
	srv := fakeTracker(t, nil, "")
	session := NewSession(ClientOptions{})
	require.NoError(t, session.Open(context.Background(), AuthMode{Kind: AuthAnonymous}, srv.URL))
	defer session.Close()

	_, err := session.Issue(context.Background(), "LPE-404")
	var notFound *IssueNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "LPE-404", notFound.Key)
}

func TestSession_BasicAuthHeaderSent(t *testing.T) {
	// "just:testing" base64-encoded.
	srv := fakeTracker(t, nil, "Basic anVzdDp0ZXN0aW5n")
	session := NewSession(ClientOptions{})

	mode, err := ResolveAuth(Credentials{Username: "just", Password: "testing"})
	require.NoError(t, err)

	require.NoError(t, session.Open(context.Background(), mode, srv.URL))
	session.Close()
}
