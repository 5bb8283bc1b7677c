package forms

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wintryx/progressmaker/pkg/validator"
)

// Validate checks values against the validators of every editable field.
// Failures are returned as validator.ValidationErrors keyed by field key;
// nil means valid. Optional fields left empty are not checked further.
func (c Config) Validate(values Values) error {
	var rules []validator.Rule
	for _, f := range c.Fields {
		if !f.Editable() {
			continue
		}
		rules = append(rules, f.rules(values[f.Key])...)
	}
	return validator.Apply(rules...)
}

func (f Field) rules(value any) []validator.Rule {
	text, isText := value.(string)
	empty := value == nil || (isText && strings.TrimSpace(text) == "")

	var rules []validator.Rule
	for _, v := range f.Validators {
		if v.Type == ValidatorRequired {
			rules = append(rules, f.required(value, text).WithMessage(f.message(v, "%s is required.")))
			continue
		}
		if empty {
			continue
		}
		if r, ok := f.rule(v, value, text); ok {
			rules = append(rules, r)
		}
	}
	return rules
}

func (f Field) required(value any, text string) validator.Rule {
	if b, ok := value.(bool); ok && f.Type == FieldCheckbox {
		return validator.Checked(f.Key, b)
	}
	if value != nil {
		if _, isText := value.(string); !isText {
			text = fmt.Sprint(value)
		}
	}
	return validator.Required(f.Key, text)
}

// rule maps one schema validator to a rule. Validators with malformed
// arguments are skipped.
func (f Field) rule(v Validator, value any, text string) (validator.Rule, bool) {
	var r validator.Rule
	switch v.Type {
	case ValidatorEmail:
		r = validator.ValidEmail(f.Key, text).WithMessage(f.message(v, "%s must be a valid email address."))
	case ValidatorMinLength:
		n, ok := number(v.Value)
		if !ok {
			return r, false
		}
		r = validator.MinLen(f.Key, text, int(n)).WithMessage(f.message(v, "%s is too short."))
	case ValidatorMaxLength:
		n, ok := number(v.Value)
		if !ok {
			return r, false
		}
		r = validator.MaxLen(f.Key, text, int(n)).WithMessage(f.message(v, "%s is too long."))
	case ValidatorPattern:
		pattern, _ := v.Value.(string)
		re, err := regexp.Compile(pattern)
		if err != nil {
			return r, false
		}
		r = validator.MatchesRegex(f.Key, text, re, pattern).WithMessage(f.message(v, "%s has an invalid format."))
	case ValidatorMin, ValidatorMax:
		limit, ok := number(v.Value)
		got, okValue := number(value)
		if !ok || !okValue {
			return r, false
		}
		if v.Type == ValidatorMin {
			r = validator.MinNum(f.Key, got, limit).WithMessage(f.message(v, "%s is too small."))
		} else {
			r = validator.MaxNum(f.Key, got, limit).WithMessage(f.message(v, "%s is too large."))
		}
	default:
		return r, false
	}
	return r, true
}

func (f Field) message(v Validator, format string) string {
	if v.Message != "" {
		return v.Message
	}
	return fmt.Sprintf(format, f.Label)
}

// number accepts the numeric shapes produced by both JSON and YAML decoding.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
