package git

// TicketFlags builds the log filter arguments for a list of tickets: one
// --grep match per ticket, in input order, plus the branch as a trailing
// revision when non-empty. git ORs multiple --grep patterns together, so
// ordering only matters for reproducibility, not for what matches.
//
// Ticket identifiers are embedded verbatim; callers own keeping
// pattern-breaking characters out of them. An empty ticket list is legal
// and yields a query that falls through to git's default history.
func TicketFlags(tickets []string, branch string) []string {
	flags := make([]string, 0, len(tickets)+1)
	for _, ticket := range tickets {
		flags = append(flags, "--grep="+ticket)
	}
	if branch != "" {
		flags = append(flags, branch)
	}
	return flags
}
