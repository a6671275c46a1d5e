package jira

// AuthKind discriminates the AuthMode union.
type AuthKind int

const (
	// AuthAnonymous connects without credentials.
	AuthAnonymous AuthKind = iota
	// AuthBasic authenticates with username and password.
	AuthBasic
	// AuthToken authenticates with the oauth credential set.
	AuthToken
)

// String returns the strategy name for logging.
func (k AuthKind) String() string {
	switch k {
	case AuthBasic:
		return StrategyBasic
	case AuthToken:
		return StrategyOAuth
	default:
		return "anonymous"
	}
}

// BasicAuth carries a username/password pair.
type BasicAuth struct {
	Username string
	Password string
}

// TokenAuth carries the oauth credential set.
type TokenAuth struct {
	AccessToken string
	TokenSecret string
	ConsumerKey string
	KeyCert     string
}

// AuthMode is a tagged union over the three authentication strategies. Only
// the field matching Kind is meaningful. Construct it with ResolveAuth; the
// zero value is anonymous.
type AuthMode struct {
	Kind  AuthKind
	Basic BasicAuth
	Token TokenAuth
}

// Credentials is the unvalidated credential bag collected from flags and the
// config file. The zero value means anonymous access.
type Credentials struct {
	Username string
	Password string

	AccessToken string
	TokenSecret string
	ConsumerKey string
	KeyCert     string
}

// ResolveAuth classifies a credential bag into exactly one auth mode.
//
// A strategy counts as present only when every one of its fields is set and
// absent only when none is; anything in between fails with a
// *PartialCredentialsError naming the offending strategy. Both strategies
// fully present at once fails with ErrConflictingCredentials. Pure
// validation with no I/O; every combination of set and unset fields maps to
// exactly one of the three modes or one of the two errors.
func ResolveAuth(creds Credentials) (AuthMode, error) {
	basic := countNonEmpty(creds.Username, creds.Password)
	token := countNonEmpty(creds.AccessToken, creds.TokenSecret, creds.ConsumerKey, creds.KeyCert)

	if basic != 0 && basic != 2 {
		return AuthMode{}, &PartialCredentialsError{Strategy: StrategyBasic}
	}
	if token != 0 && token != 4 {
		return AuthMode{}, &PartialCredentialsError{Strategy: StrategyOAuth}
	}

	switch {
	case basic == 2 && token == 4:
		return AuthMode{}, ErrConflictingCredentials
	case basic == 2:
		return AuthMode{
			Kind:  AuthBasic,
			Basic: BasicAuth{Username: creds.Username, Password: creds.Password},
		}, nil
	case token == 4:
		return AuthMode{
			Kind: AuthToken,
			Token: TokenAuth{
				AccessToken: creds.AccessToken,
				TokenSecret: creds.TokenSecret,
				ConsumerKey: creds.ConsumerKey,
				KeyCert:     creds.KeyCert,
			},
		}, nil
	default:
		return AuthMode{Kind: AuthAnonymous}, nil
	}
}

func countNonEmpty(fields ...string) int {
	n := 0
	for _, f := range fields {
		if f != "" {
			n++
		}
	}
	return n
}
