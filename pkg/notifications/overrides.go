package notifications

import "time"

// Overrides is a partial Options. A nil field is undefined and is filled
// from defaults; a non-nil field always wins, including false and zero.
// Error notifications are the one exception: an empty Message is replaced
// by the failure's message so no error toast is ever blank.
type Overrides struct {
	Message       *string
	Type          *Type
	ActionLabel   *string
	ClearExisting *bool
	Duration      *time.Duration
}

// Override sets one field of Overrides.
type Override func(*Overrides)

func WithMessage(msg string) Override {
	return func(o *Overrides) { o.Message = &msg }
}

func WithType(t Type) Override {
	return func(o *Overrides) { o.Type = &t }
}

func WithActionLabel(label string) Override {
	return func(o *Overrides) { o.ActionLabel = &label }
}

func WithClearExisting(clear bool) Override {
	return func(o *Overrides) { o.ClearExisting = &clear }
}

func WithDuration(d time.Duration) Override {
	return func(o *Overrides) { o.Duration = &d }
}

// Collect applies overrides in order to an empty Overrides.
func Collect(overrides ...Override) Overrides {
	var o Overrides
	for _, apply := range overrides {
		if apply != nil {
			apply(&o)
		}
	}
	return o
}

// OverridesFrom lifts full options into overrides with every field defined.
func OverridesFrom(opts Options) Overrides {
	return Overrides{
		Message:       &opts.Message,
		Type:          &opts.Type,
		ActionLabel:   &opts.ActionLabel,
		ClearExisting: &opts.ClearExisting,
		Duration:      &opts.Duration,
	}
}

// Merge layers top over o. Fields defined in top win.
func (o Overrides) Merge(top Overrides) Overrides {
	if top.Message != nil {
		o.Message = top.Message
	}
	if top.Type != nil {
		o.Type = top.Type
	}
	if top.ActionLabel != nil {
		o.ActionLabel = top.ActionLabel
	}
	if top.ClearExisting != nil {
		o.ClearExisting = top.ClearExisting
	}
	if top.Duration != nil {
		o.Duration = top.Duration
	}
	return o
}

// Fill returns defaults with every defined field of o written over it.
func (o Overrides) Fill(defaults Options) Options {
	out := defaults
	if o.Message != nil {
		out.Message = *o.Message
	}
	if o.Type != nil {
		out.Type = *o.Type
	}
	if o.ActionLabel != nil {
		out.ActionLabel = *o.ActionLabel
	}
	if o.ClearExisting != nil {
		out.ClearExisting = *o.ClearExisting
	}
	if o.Duration != nil {
		out.Duration = *o.Duration
	}
	return out
}
