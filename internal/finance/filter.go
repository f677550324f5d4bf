package finance

import "strings"

// FilteredTransactions applies the active filters in order: member,
// date range, type, text search. The predicates are independent, so the
// order only matters for how quickly the candidate set shrinks.
func (s *Store) FilteredTransactions() []Transaction {
	out := make([]Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if !matchesMember(t, s.filter.MemberID) {
			continue
		}
		if !inRange(t, s.filter.Range) {
			continue
		}
		if !matchesType(t, s.filter.Type) {
			continue
		}
		if !matchesSearch(t, s.filter.Search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesMember(t Transaction, memberID string) bool {
	if memberID == "" {
		return true
	}
	return t.MemberID == memberID
}

// inRange is inclusive on both ends. Dates are zero-padded ISO strings, so
// string comparison is chronological; an inverted range matches nothing.
func inRange(t Transaction, r DateRange) bool {
	return t.Date >= r.Start && t.Date <= r.End
}

func matchesType(t Transaction, f TypeFilter) bool {
	if f == FilterAll {
		return true
	}
	return string(t.Type) == string(f)
}

func matchesSearch(t Transaction, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.Category), q)
}
