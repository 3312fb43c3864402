package variant

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type file struct {
	Variants []yaml.Node `yaml:"variants"`
}

// Load reads variant overrides from r and applies them to base.
//
// An entry whose name matches a variant in base overrides only the fields
// it sets; other entries are appended as new variants. Every resulting
// variant is validated.
func Load(r io.Reader, base Set) (Set, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrDecodeFailed, err)
	}

	out := make(Set, len(base))
	copy(out, base)

	for i, node := range f.Variants {
		var head struct {
			Name string `yaml:"name"`
		}
		if err := node.Decode(&head); err != nil {
			return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("entry %d: %w", i, err))
		}
		if head.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidVariant, i)
		}

		idx := -1
		for j := range out {
			if out[j].Name == head.Name {
				idx = j
				break
			}
		}

		var v Variant
		if idx >= 0 {
			v = out[idx]
			v.Colors = append([]string(nil), v.Colors...)
			if v.Layout.Flag != nil {
				flag := *v.Layout.Flag
				v.Layout.Flag = &flag
			}
		} else {
			v.Schedule = DefaultSchedule
		}
		if err := decodeStrict(&node, &v); err != nil {
			return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("variant %q: %w", head.Name, err))
		}

		if idx >= 0 {
			out[idx] = v
		} else {
			out = append(out, v)
		}
	}

	for _, v := range out {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// decodeStrict decodes node onto out, rejecting keys out does not declare.
// yaml.Node.Decode does not honor KnownFields.
func decodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// LoadFile is Load reading from the file at path.
// An empty path returns base unchanged.
func LoadFile(path string, base Set) (Set, error) {
	if path == "" {
		return base, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("variant: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, base)
}
