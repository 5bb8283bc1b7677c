package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wintryx/progressmaker/pkg/validator"
)

func TestRules(t *testing.T) {
	t.Parallel()

	code := regexp.MustCompile(`^[A-Z]{3}$`)

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"required ok", validator.Required("f", "x"), true},
		{"required blank", validator.Required("f", " \t"), false},
		{"checked", validator.Checked("f", true), true},
		{"unchecked", validator.Checked("f", false), false},
		{"min len counts runes", validator.MinLen("f", "żółw", 4), true},
		{"min len short", validator.MinLen("f", "ab", 3), false},
		{"max len counts runes", validator.MaxLen("f", "żółw", 4), true},
		{"max len long", validator.MaxLen("f", "abcdef", 5), false},
		{"email ok", validator.ValidEmail("f", "ann@example.com"), true},
		{"email padded", validator.ValidEmail("f", " ann@example.com "), true},
		{"email no at", validator.ValidEmail("f", "nope"), false},
		{"email no dot", validator.ValidEmail("f", "ann@localhost"), false},
		{"email empty label", validator.ValidEmail("f", "ann@example..com"), false},
		{"email display name", validator.ValidEmail("f", "Ann <ann@example.com>"), false},
		{"email empty", validator.ValidEmail("f", ""), false},
		{"regex match", validator.MatchesRegex("f", "ABC", code, "code"), true},
		{"regex mismatch", validator.MatchesRegex("f", "abc", code, "code"), false},
		{"regex empty", validator.MatchesRegex("f", "", code, "code"), false},
		{"min num", validator.MinNum("f", 18.0, 18.0), true},
		{"min num below", validator.MinNum("f", 12, 18), false},
		{"max num", validator.MaxNum("f", 99.0, 99.0), true},
		{"max num above", validator.MaxNum("f", 100, 99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}

func TestRules_Messages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "must be at least 3 characters long", validator.MinLen("f", "", 3).Error.Message)
	assert.Equal(t, "must be at most 5 characters long", validator.MaxLen("f", "", 5).Error.Message)
	assert.Equal(t, "must be at least 18", validator.MinNum("f", 0, 18).Error.Message)
	assert.Equal(t, "must match code pattern", validator.MatchesRegex("f", "", regexp.MustCompile("."), "code").Error.Message)
	assert.Equal(t, "age", validator.MaxNum("age", 1, 0).Error.Field)
}
