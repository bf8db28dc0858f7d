package content

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// document is a content file split into its metadata and Markdown body.
type document struct {
	meta map[string]any
	body string
}

// parseDocument splits source into YAML front-matter and body. A file without
// a front-matter block is all body.
func parseDocument(source []byte) (*document, error) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return &document{meta: meta, body: string(body)}, nil
}

// text returns the value under key as a string. YAML timestamps are printed
// back in the ISO form the author most likely wrote.
func (d *document) text(key string) (string, bool) {
	v, ok := d.meta[key]
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case time.Time:
		return formatTimestamp(val), true
	default:
		return fmt.Sprint(val), true
	}
}

// tags accepts either a YAML list or a single scalar.
func (d *document) tags() ([]string, bool) {
	v, ok := d.meta["tags"]
	if !ok || v == nil {
		return nil, false
	}
	switch val := v.(type) {
	case []any:
		tags := make([]string, 0, len(val))
		for _, t := range val {
			if t == nil {
				continue
			}
			tags = append(tags, fmt.Sprint(t))
		}
		return tags, true
	case []string:
		return append([]string{}, val...), true
	case string:
		return []string{val}, true
	default:
		return []string{fmt.Sprint(val)}, true
	}
}

// image reads keys like ogImage that are either a plain path or a mapping
// with a url entry.
func (d *document) image(key string) (string, bool) {
	v, ok := d.meta[key]
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case map[string]any:
		if u, ok := val["url"].(string); ok {
			return u, true
		}
	case map[any]any:
		if u, ok := val["url"].(string); ok {
			return u, true
		}
	}
	return "", false
}

func formatTimestamp(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}
