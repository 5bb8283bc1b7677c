package forms

// FieldType names the input control of a field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldNumber   FieldType = "number"
	FieldPassword FieldType = "password"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldSwitch   FieldType = "switch"
	FieldRadio    FieldType = "radio"
	FieldDate     FieldType = "date"
	FieldFile     FieldType = "file"
)

// ValidatorType names a validation rule.
type ValidatorType string

const (
	ValidatorRequired  ValidatorType = "required"
	ValidatorEmail     ValidatorType = "email"
	ValidatorMinLength ValidatorType = "minLength"
	ValidatorMaxLength ValidatorType = "maxLength"
	ValidatorPattern   ValidatorType = "pattern"
	ValidatorMin       ValidatorType = "min"
	ValidatorMax       ValidatorType = "max"
)

type FieldOption struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

type Validator struct {
	Type    ValidatorType `json:"type" yaml:"type"`
	Value   any           `json:"value,omitempty" yaml:"value,omitempty"`
	Message string        `json:"message,omitempty" yaml:"message,omitempty"`
}

type Permissions struct {
	Hidden   bool `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Readonly bool `json:"readonly,omitempty" yaml:"readonly,omitempty"`
}

// Grid holds column spans per breakpoint.
type Grid struct {
	Default int `json:"default,omitempty" yaml:"default,omitempty"`
	SM      int `json:"sm,omitempty" yaml:"sm,omitempty"`
	MD      int `json:"md,omitempty" yaml:"md,omitempty"`
	LG      int `json:"lg,omitempty" yaml:"lg,omitempty"`
	XL      int `json:"xl,omitempty" yaml:"xl,omitempty"`
}

type Field struct {
	Key         string        `json:"key" yaml:"key"`
	Type        FieldType     `json:"type" yaml:"type"`
	Label       string        `json:"label" yaml:"label"`
	Value       any           `json:"value,omitempty" yaml:"value,omitempty"`
	Placeholder string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []FieldOption `json:"options,omitempty" yaml:"options,omitempty"`
	Validators  []Validator   `json:"validators,omitempty" yaml:"validators,omitempty"`
	Permissions *Permissions  `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Grid        *Grid         `json:"grid,omitempty" yaml:"grid,omitempty"`
	Accept      string        `json:"accept,omitempty" yaml:"accept,omitempty"`
	Multiple    bool          `json:"multiple,omitempty" yaml:"multiple,omitempty"`
}

// Required reports whether the field carries a required validator.
func (f Field) Required() bool {
	_, ok := f.Validator(ValidatorRequired)
	return ok
}

// Validator returns the first validator of type t.
func (f Field) Validator(t ValidatorType) (Validator, bool) {
	for _, v := range f.Validators {
		if v.Type == t {
			return v, true
		}
	}
	return Validator{}, false
}

// Editable reports whether a user can change the field.
func (f Field) Editable() bool {
	return f.Permissions == nil || (!f.Permissions.Hidden && !f.Permissions.Readonly)
}

// Config is a complete form schema.
type Config struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	SubmitLabel string  `json:"submitLabel,omitempty" yaml:"submitLabel,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Field returns the field with the given key.
func (c Config) Field(key string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns the initial value of every field that declares one.
func (c Config) Defaults() Values {
	values := make(Values, len(c.Fields))
	for _, f := range c.Fields {
		if f.Value != nil {
			values[f.Key] = f.Value
		}
	}
	return values
}

// Values are submitted field values keyed by field key.
type Values map[string]any

// SubmitResult is the backend's answer to a successful submission.
type SubmitResult struct {
	Message string `json:"message"`
}
