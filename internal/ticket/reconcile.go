package ticket

import "strings"

// MatchMode selects how ticket identifiers are matched against log text.
type MatchMode int

const (
	// MatchSubstring is the default: a ticket counts as found when its
	// identifier occurs anywhere in the log text. This keeps the historical
	// behavior of grepping raw log output, including its known imprecision:
	// "LPS-1" is satisfied by a commit that only mentions "LPS-10".
	MatchSubstring MatchMode = iota

	// MatchStrict rejects occurrences that continue with more digits or are
	// preceded by an identifier character, so "LPS-1" no longer matches
	// inside "LPS-10" or "XLPS-1". Opt-in; changes which tickets are
	// reported compared to MatchSubstring.
	MatchStrict
)

// Missing returns the subset of tickets whose identifier does not appear in
// logText, in the order the input set yields them. Pure function: an empty
// ticket set yields an empty result, empty log text yields the full set.
func Missing(tickets *Set, logText string, mode MatchMode) *Set {
	missing := NewSet()
	for _, t := range tickets.Keys() {
		if !found(string(t), logText, mode) {
			missing.Add(t)
		}
	}
	return missing
}

func found(ticket, text string, mode MatchMode) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], ticket)
		if i < 0 {
			return false
		}
		i += start
		if mode == MatchSubstring || standsAlone(text, i, len(ticket)) {
			return true
		}
		start = i + 1
	}
}

// standsAlone reports whether the occurrence at [i, i+n) is not embedded in
// a longer identifier: the preceding byte is not a letter, digit, or hyphen,
// and the following byte does not extend the ticket number.
func standsAlone(text string, i, n int) bool {
	if i > 0 && isIdentByte(text[i-1]) {
		return false
	}
	if end := i + n; end < len(text) && isDigit(text[end]) {
		return false
	}
	return true
}

func isIdentByte(c byte) bool {
	return c == '-' || isDigit(c) || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
