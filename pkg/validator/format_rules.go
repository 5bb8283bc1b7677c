package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// ValidEmail accepts a bare RFC 5322 address whose domain has at least one
// dot. Display-name forms like "Ann <ann@example.com>" are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return false
			}
			addr, err := mail.ParseAddress(v)
			if err != nil || addr.Address != v {
				return false
			}
			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return strings.Contains(domain, ".")
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// MatchesRegex fails when value does not match re. Callers compile re once
// and reuse it.
func MatchesRegex(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must match %s pattern", description)},
	}
}
