package index

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads an index expression in NumPy notation, one entry per mode:
//
//	"0, :, 1:3, ::-1, [0,2,-1], ()"
//
// An empty tuple "()" is accepted as a synonym of ":".
func Parse(expr string) ([]Index, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	var out []Index
	for _, field := range splitTopLevel(expr) {
		idx, err := parseOne(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
	}
	return out, nil
}

// Format renders an index expression back to NumPy notation.
func Format(indices []Index) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = idx.String()
	}
	return strings.Join(parts, ", ")
}

func splitTopLevel(s string) []string {
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

func parseOne(field string) (Index, error) {
	switch {
	case field == ":" || field == "()" || field == "::":
		return Full{}, nil
	case strings.HasPrefix(field, "["):
		if !strings.HasSuffix(field, "]") {
			return nil, fmt.Errorf("%w: unclosed list %q", ErrInvalid, field)
		}
		var l List
		for _, item := range strings.Split(field[1:len(field)-1], ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			v, err := strconv.Atoi(item)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalid, item, err)
			}
			l = append(l, v)
		}
		if len(l) == 0 {
			return nil, fmt.Errorf("%w: empty index list", ErrInvalid)
		}
		return l, nil
	case strings.Contains(field, ":"):
		return parseSlice(field)
	default:
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalid, field, err)
		}
		return Point(v), nil
	}
}

func parseSlice(field string) (Index, error) {
	parts := strings.Split(field, ":")
	if len(parts) > 3 {
		return nil, fmt.Errorf("%w: slice %q has too many fields", ErrInvalid, field)
	}

	bound := func(s string) (*int, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalid, s, err)
		}
		return &v, nil
	}

	var sl Slice
	var err error
	if sl.Start, err = bound(parts[0]); err != nil {
		return nil, err
	}
	if sl.Stop, err = bound(parts[1]); err != nil {
		return nil, err
	}
	if len(parts) == 3 {
		step, err := bound(parts[2])
		if err != nil {
			return nil, err
		}
		if step != nil {
			if *step == 0 {
				return nil, fmt.Errorf("%w: slice step cannot be zero", ErrInvalid)
			}
			sl.Step = *step
		}
	}

	if sl.Start == nil && sl.Stop == nil && (sl.Step == 0 || sl.Step == 1) {
		return Full{}, nil
	}
	return sl, nil
}
