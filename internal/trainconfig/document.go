package trainconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"finetrain/internal/services"
)

// Document is a hierarchical training configuration keyed by strings.
type Document map[string]any

// requiredSections are the top-level mappings a usable base config must have.
var requiredSections = []string{"data", "validation"}

// Load reads and parses a base training configuration. The returned document
// is a fresh value; callers may mutate it freely without touching the file.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "derive", "load", fmt.Sprintf("read base config %s", path), err)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "derive", "load", fmt.Sprintf("parse base config %s", path), err)
	}
	if doc == nil {
		return nil, services.Wrap(services.ErrConfiguration, "derive", "load", fmt.Sprintf("base config %s is empty", path), nil)
	}

	for _, section := range requiredSections {
		if _, ok := doc.Section(section); !ok {
			return nil, services.Wrap(services.ErrConfiguration, "derive", "load", fmt.Sprintf("base config %s missing %q section", path, section), nil)
		}
	}
	return doc, nil
}

// Section returns the named top-level mapping when present. Nested mappings
// decode as Document when the root was unmarshaled into one, so both map
// shapes are accepted.
func (d Document) Section(name string) (map[string]any, bool) {
	switch typed := d[name].(type) {
	case map[string]any:
		return typed, true
	case Document:
		return map[string]any(typed), true
	default:
		return nil, false
	}
}

// Clone deep-copies the document so derivations never alias the base.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return Document(cloneMap(map[string]any(d)))
}

// Write serializes the document as YAML to the given path.
func (d Document) Write(path string) error {
	encoded, err := yaml.Marshal(map[string]any(d))
	if err != nil {
		return services.Wrap(services.ErrIO, "derive", "write", fmt.Sprintf("marshal derived config %s", path), err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return services.Wrap(services.ErrIO, "derive", "write", fmt.Sprintf("write derived config %s", path), err)
	}
	return nil
}

func cloneMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = cloneValue(value)
	}
	return dst
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneMap(typed)
	case Document:
		return Document(cloneMap(map[string]any(typed)))
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return value
	}
}
