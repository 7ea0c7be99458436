package catalog

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Export renders the messages of locale as nested YAML with sorted keys and
// two-space indentation. Keys that cannot be nested without clobbering a
// sibling ("a.b" next to "a.b.c") stay flat at the top level.
func (c *Catalog) Export(locale string) ([]byte, error) {
	c.mu.RLock()
	bucket := c.messages[CanonicalLocale(locale)]
	keys := make([]string, 0, len(bucket))
	for key := range bucket {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	doc := make(map[string]any)
	for _, key := range keys {
		nest(doc, key, bucket[key])
	}
	c.mu.RUnlock()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("catalog: export %s: %w", locale, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("catalog: export %s: %w", locale, err)
	}
	return buf.Bytes(), nil
}

func nest(doc map[string]any, key, message string) {
	segments := strings.Split(key, ".")
	current := doc
	for i, segment := range segments {
		if i == len(segments)-1 {
			if _, taken := current[segment]; taken {
				doc[key] = message
				return
			}
			current[segment] = message
			return
		}

		switch next := current[segment].(type) {
		case map[string]any:
			current = next
		case nil:
			child := make(map[string]any)
			current[segment] = child
			current = child
		default:
			doc[key] = message
			return
		}
	}
}
