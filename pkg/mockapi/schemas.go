package mockapi

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/wintryx/progressmaker/pkg/forms"
)

//go:embed schemas/*.yaml
var schemaFS embed.FS

// schema is a form definition plus the message returned on submit.
type schema struct {
	forms.Config   `yaml:",inline"`
	SuccessMessage string `yaml:"successMessage"`
}

// loadSchemas decodes every YAML file in fsys keyed by form id.
func loadSchemas(fsys fs.FS) (map[string]schema, error) {
	files, err := fs.Glob(fsys, "schemas/*.yaml")
	if err != nil {
		return nil, errors.Join(ErrLoadSchemas, err)
	}

	out := make(map[string]schema, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrLoadSchemas, err)
		}
		var s schema
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, errors.Join(ErrLoadSchemas, fmt.Errorf("%s: %w", path.Base(name), err))
		}
		if s.ID == "" {
			return nil, errors.Join(ErrLoadSchemas, fmt.Errorf("%s: missing id", path.Base(name)))
		}
		out[s.ID] = s
	}
	return out, nil
}
