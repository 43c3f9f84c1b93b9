package family

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the document syntax
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// ErrBadReference is returned for ids or parent refs that are not
// non-negative integers
var ErrBadReference = errors.New("bad reference")

// FormatForPath picks the document format from a file extension
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawRecord accepts both the current shape ({id, name, parents}) and the
// older editor shape ({id, name, mother, father}) where parent ids were
// often stored as strings.
type rawRecord struct {
	ID      any    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Parents []any  `json:"parents" yaml:"parents"`
	Mother  any    `json:"mother" yaml:"mother"`
	Father  any    `json:"father" yaml:"father"`
}

// Decode reads a family document into a Collection. Records without an id
// get the next sequential one; a repeated id replaces the earlier record.
func Decode(r io.Reader, format Format) (*Collection, error) {
	var raws []rawRecord
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raws); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&raws); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	}

	c := &Collection{}
	for i, raw := range raws {
		p, err := raw.person()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		c.Put(p)
	}
	return c, nil
}

// LoadFile opens and decodes a family document
func LoadFile(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening family file: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Encode writes people as an indented JSON array
func Encode(w io.Writer, people []Person) error {
	if people == nil {
		people = []Person{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(people)
}

func (raw rawRecord) person() (Person, error) {
	id, err := toID(raw.ID)
	if err != nil {
		return Person{}, fmt.Errorf("id: %w", err)
	}

	var refs [2]any
	switch {
	case len(raw.Parents) > 2:
		return Person{}, fmt.Errorf("parents: expected 2 entries, got %d", len(raw.Parents))
	case len(raw.Parents) > 0:
		copy(refs[:], raw.Parents)
	default:
		refs = [2]any{raw.Mother, raw.Father}
	}

	p := Person{ID: id, Name: raw.Name}
	for slot, ref := range refs {
		pid, err := toID(ref)
		if err != nil {
			return Person{}, fmt.Errorf("parent %d: %w", slot+1, err)
		}
		p.Parents[slot] = pid
	}
	return p, nil
}

// toID converts a decoded scalar into an id. nil and "" are 0.
func toID(v any) (int, error) {
	var n int64
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		n = int64(t)
	case int64:
		n = t
	case uint64:
		if t > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d out of range", ErrBadReference, t)
		}
		n = int64(t)
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrBadReference, t)
		}
		n = int64(t)
	case json.Number:
		parsed, err := strconv.ParseInt(t.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrBadReference, t.String())
		}
		n = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrBadReference, t)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%w: unexpected %T", ErrBadReference, v)
	}
	if n < 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d out of range", ErrBadReference, n)
	}
	return int(n), nil
}
