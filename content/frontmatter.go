package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// frontMatterEnvelope is the decoding target for the header block. Date is
// left untyped because YAML and TOML disagree on how a bare date decodes.
// Author and Tags are untyped so a plain string is accepted for either.
type frontMatterEnvelope struct {
	Title   string `yaml:"title" toml:"title" json:"title"`
	Date    any    `yaml:"date" toml:"date" json:"date"`
	Excerpt string `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	Author  any    `yaml:"author" toml:"author" json:"author"`
	Tags    any    `yaml:"tags" toml:"tags" json:"tags"`
}

// metadata is the normalised, validated form of the header block.
type metadata struct {
	Title   string
	Date    string
	Excerpt string
	Author  *Author
	Tags    []string
}

// splitFrontMatter separates the header block from the Markdown body.
// YAML (---), TOML (+++) and JSON (;;;) headers are recognised.
func splitFrontMatter(src []byte) (metadata, []byte, error) {
	var env frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(src), &env)
	if err != nil {
		return metadata{}, nil, err
	}

	author, err := authorValue(env.Author)
	if err != nil {
		return metadata{}, nil, err
	}
	tags, err := tagsValue(env.Tags)
	if err != nil {
		return metadata{}, nil, err
	}
	return metadata{
		Title:   env.Title,
		Date:    dateString(env.Date),
		Excerpt: env.Excerpt,
		Author:  author,
		Tags:    tags,
	}, body, nil
}

// authorValue accepts either a bare name or a name/callsign table.
func authorValue(v any) (*Author, error) {
	switch a := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return authorFromFields(a["name"], a["callsign"]), nil
	case map[any]any:
		return authorFromFields(a["name"], a["callsign"]), nil
	case []any:
		return nil, errors.New("author: must be a name or a table with name and callsign")
	default:
		name := fmt.Sprint(a)
		if strings.TrimSpace(name) == "" {
			return nil, nil
		}
		return &Author{Name: name}, nil
	}
}

func authorFromFields(name, callsign any) *Author {
	author := Author{Name: scalarString(name), Callsign: scalarString(callsign)}
	if author.Name == "" && author.Callsign == "" {
		return nil
	}
	return &author
}

// tagsValue accepts a list of scalars or a single scalar tag.
func tagsValue(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []any:
		var tags []string
		for _, item := range t {
			switch item.(type) {
			case map[string]any, map[any]any, []any:
				return nil, errors.New("tags: entries must be plain values")
			}
			if s := scalarString(item); s != "" {
				tags = append(tags, s)
			}
		}
		return tags, nil
	case []string:
		if len(t) == 0 {
			return nil, nil
		}
		return append([]string(nil), t...), nil
	case map[string]any, map[any]any:
		return nil, errors.New("tags: must be a list or a single tag")
	default:
		if s := scalarString(t); s != "" {
			return []string{s}, nil
		}
		return nil, nil
	}
}

func scalarString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Validate checks the fields every post must carry.
func (m metadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required, validation.By(notBlank)),
		validation.Field(&m.Date, validation.Required, validation.By(parseableDate)),
	)
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func parseableDate(value any) error {
	s, _ := value.(string)
	if _, err := ParseDate(s); err != nil {
		return errors.New("must be a date such as 2024-06-01 or an RFC 3339 timestamp")
	}
	return nil
}
