package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a tensorized shape written as comma separated modes, where a
// parenthesised list is a grouped mode: "(2,3),4" or "(2,)".
func Parse(s string) (Tensorized, error) {
	var out Tensorized
	rest := strings.TrimSpace(s)
	if rest == "" {
		return nil, fmt.Errorf("%w: empty shape", ErrInvalidShape)
	}

	for rest != "" {
		var m Mode
		if strings.HasPrefix(rest, "(") {
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed group in %q", ErrInvalidShape, s)
			}
			m.Grouped = true
			for _, field := range strings.Split(rest[1:end], ",") {
				field = strings.TrimSpace(field)
				if field == "" {
					continue
				}
				d, err := strconv.Atoi(field)
				if err != nil {
					return nil, fmt.Errorf("%w: %q: %v", ErrInvalidShape, field, err)
				}
				m.Dims = append(m.Dims, d)
			}
			rest = strings.TrimSpace(rest[end+1:])
		} else {
			field, tail, _ := strings.Cut(rest, ",")
			d, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidShape, field, err)
			}
			m = Dim(d)
			rest = strings.TrimSpace(tail)
			out = append(out, m)
			continue
		}

		out = append(out, m)
		if rest != "" {
			if !strings.HasPrefix(rest, ",") {
				return nil, fmt.Errorf("%w: expected ',' after group in %q", ErrInvalidShape, s)
			}
			rest = strings.TrimSpace(rest[1:])
		}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
