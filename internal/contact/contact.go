// Package contact defines the Contact value type and the pure pipeline
// that merges and filters contact collections.
package contact

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Contact is a single directory entry. Field names match the remote JSON.
type Contact struct {
	ID       int     `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
	Address  Address `json:"address"`
}

// Company is the employer block of a Contact.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
}

// Address is the location block of a Contact. Only city and zipcode are shown.
type Address struct {
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// Seed returns the built-in contacts that are always present, regardless of
// whether the remote source answers. Each call returns a fresh slice.
func Seed() []Contact {
	return []Contact{
		{
			ID:       101,
			Name:     "Sarah Mitchell",
			Username: "sarahm",
			Email:    "sarah.mitchell@techcorp.com",
			Phone:    "+1 (555) 123-4567",
			Website:  "sarahmitchell.dev",
			Company:  Company{Name: "TechCorp Solutions", CatchPhrase: "Innovating the future of technology"},
			Address:  Address{City: "San Francisco", Zipcode: "94105"},
		},
		{
			ID:       102,
			Name:     "Marcus Johnson",
			Username: "mjohnson",
			Email:    "marcus.j@designstudio.io",
			Phone:    "+1 (555) 987-6543",
			Website:  "marcusdesigns.com",
			Company:  Company{Name: "Design Studio Pro", CatchPhrase: "Where creativity meets functionality"},
			Address:  Address{City: "New York", Zipcode: "10001"},
		},
	}
}

// Merge unions seed and remote keyed by ID. Seed entries are inserted
// first, then remote entries; a remote entry whose ID is already present
// replaces the stored value but keeps its first position. The result
// lists values in first-insertion order.
func Merge(seed, remote []Contact) []Contact {
	index := make(map[int]int, len(seed)+len(remote))
	merged := make([]Contact, 0, len(seed)+len(remote))

	insert := func(c Contact) {
		if i, ok := index[c.ID]; ok {
			merged[i] = c
			return
		}
		index[c.ID] = len(merged)
		merged = append(merged, c)
	}

	for _, c := range seed {
		insert(c)
	}
	for _, c := range remote {
		insert(c)
	}
	return merged
}

// Matches reports whether the lower-cased query is a substring of the
// contact's name, email, or company name. An empty query matches.
func Matches(c Contact, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Email), q) ||
		strings.Contains(strings.ToLower(c.Company.Name), q)
}

// Filter returns the contacts matching query, in input order.
// An empty query returns every contact.
func Filter(contacts []Contact, query string) []Contact {
	out := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if Matches(c, query) {
			out = append(out, c)
		}
	}
	return out
}

// Initials returns the upper-cased first letter of each space-separated
// token of name. "Sarah Mitchell" yields "SM".
func Initials(name string) string {
	var b strings.Builder
	for _, tok := range strings.Split(name, " ") {
		r, size := utf8.DecodeRuneInString(tok)
		if size == 0 {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
