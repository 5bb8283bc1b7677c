package notifications

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type is the severity of a notification. The zero value means unspecified.
type Type uint8

const (
	TypeSuccess Type = iota + 1
	TypeError
	TypeInfo
	TypeWarning
)

var typeNames = map[Type]string{
	TypeSuccess: "success",
	TypeError:   "error",
	TypeInfo:    "info",
	TypeWarning: "warning",
}

// ParseType converts a wire name into a Type.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, errors.Join(ErrInvalidType, fmt.Errorf("unknown notification type %q", s))
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return ""
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

func (t Type) MarshalText() ([]byte, error) {
	if t == 0 {
		return []byte{}, nil
	}
	if !t.Valid() {
		return nil, errors.Join(ErrInvalidType, fmt.Errorf("type %d", uint8(t)))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = 0
		return nil
	}
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

const (
	DefaultActionLabel = "OK"
	DefaultDuration    = 4 * time.Second
)

var defaultMessages = map[Type]string{
	TypeSuccess: "Action completed successfully.",
	TypeInfo:    "Here is some information.",
	TypeWarning: "Please review this warning.",
	TypeError:   "An error occurred.",
}

// DefaultMessage is the last-resort text for a notification of type t.
// Unspecified types use the info message.
func DefaultMessage(t Type) string {
	if msg, ok := defaultMessages[t]; ok {
		return msg
	}
	return defaultMessages[TypeInfo]
}

// Options describes a planned or resolved notification.
type Options struct {
	Message       string
	Type          Type
	ActionLabel   string
	ClearExisting bool
	Duration      time.Duration
}

// NewOptions builds options with the standard defaults and applies overrides on top.
func NewOptions(message string, typ Type, overrides ...Override) Options {
	if typ == 0 {
		typ = TypeSuccess
	}
	return Collect(overrides...).Fill(Options{
		Message:       message,
		Type:          typ,
		ActionLabel:   DefaultActionLabel,
		ClearExisting: true,
		Duration:      DefaultDuration,
	})
}

// DefaultErrorNotification is the merge base for error notifications.
func DefaultErrorNotification() Options {
	return NewOptions(DefaultMessage(TypeError), TypeError)
}

// DefaultSuccessNotification is presented when success announcements are
// forced and nothing more specific is known.
func DefaultSuccessNotification() Options {
	return NewOptions(DefaultMessage(TypeSuccess), TypeSuccess)
}

// normalized enforces the presentation invariants: a positive duration, a
// non-empty message and a declared type.
func (o Options) normalized() Options {
	if !o.Type.Valid() {
		o.Type = TypeInfo
	}
	if strings.TrimSpace(o.Message) == "" {
		o.Message = DefaultMessage(o.Type)
	}
	if o.ActionLabel == "" {
		o.ActionLabel = DefaultActionLabel
	}
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	return o
}

type optionsJSON struct {
	Message       string `json:"message"`
	Type          Type   `json:"type"`
	ActionLabel   string `json:"action_label"`
	ClearExisting bool   `json:"clear_existing"`
	Duration      int64  `json:"duration"`
}

// MarshalJSON encodes the duration as integer milliseconds.
func (o Options) MarshalJSON() ([]byte, error) {
	return json.Marshal(optionsJSON{
		Message:       o.Message,
		Type:          o.Type,
		ActionLabel:   o.ActionLabel,
		ClearExisting: o.ClearExisting,
		Duration:      o.Duration.Milliseconds(),
	})
}

func (o *Options) UnmarshalJSON(b []byte) error {
	var raw optionsJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*o = Options{
		Message:       raw.Message,
		Type:          raw.Type,
		ActionLabel:   raw.ActionLabel,
		ClearExisting: raw.ClearExisting,
		Duration:      time.Duration(raw.Duration) * time.Millisecond,
	}
	return nil
}
