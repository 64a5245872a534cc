// Package invite collects the e-mail addresses of the guests invited to a
// trip: syntactically valid, lowercase and unique.
package invite

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
)

var (
	// ErrInvalidEmail is returned by Add for input that is not an e-mail address.
	ErrInvalidEmail = fmt.Errorf("%w: invalid e-mail", domain.ErrValidation)

	// ErrDuplicateEmail is returned by Add when the address was already added.
	ErrDuplicateEmail = fmt.Errorf("%w: e-mail already added", domain.ErrValidation)
)

// EmailSet is an ordered list of unique lowercase e-mail addresses.
// Methods never modify the receiver; they return a new set.
type EmailSet []string

// Normalize trims surrounding whitespace and lowercases raw.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidSyntax reports whether raw looks like local@domain.tld.
// Display names ("Ana <ana@example.com>") and blank input are rejected.
func ValidSyntax(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return false
	}
	host := s[at+1:]
	dot := strings.LastIndex(host, ".")
	return dot > 0 && dot < len(host)-1
}

// Add normalizes raw and appends it to the set.
func (s EmailSet) Add(raw string) (EmailSet, error) {
	email := Normalize(raw)
	if !ValidSyntax(email) {
		return s, ErrInvalidEmail
	}
	if s.Contains(email) {
		return s, ErrDuplicateEmail
	}
	out := make(EmailSet, 0, len(s)+1)
	out = append(out, s...)
	return append(out, email), nil
}

// Remove returns the set without email. Removing an absent address is a no-op.
func (s EmailSet) Remove(email string) EmailSet {
	out := make(EmailSet, 0, len(s))
	for _, e := range s {
		if e != email {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether email is in the set (exact match).
func (s EmailSet) Contains(email string) bool {
	return slices.Contains(s, email)
}

// Len returns the number of addresses.
func (s EmailSet) Len() int {
	return len(s)
}

// Slice returns a copy of the addresses in insertion order.
func (s EmailSet) Slice() []string {
	return slices.Clone([]string(s))
}

// Summary renders the guest count shown in the form, e.g. "2 guest(s) invited".
// It is empty when nobody was invited.
func (s EmailSet) Summary() string {
	if len(s) == 0 {
		return ""
	}
	return fmt.Sprintf("%d guest(s) invited", len(s))
}
