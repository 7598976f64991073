package bitrange

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseBound parses one boundary value for the domain T. Discrete domains
// take integer literals, continuous domains take float literals.
func parseBound[T Value](s string) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	if stepOf[T]() == zero {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, errors.Wrapf(ErrParse, "bad bound %q", s)
		}
		return T(f), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return zero, errors.Wrapf(ErrParse, "bad bound %q", s)
	}
	return T(n), nil
}

// ParseInterval parses one bracketed range: "[]", "[v]" or "[hi:lo]".
func ParseInterval[T Value](s string) (Interval[T], error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return Interval[T]{}, errors.Wrapf(ErrParse, "range %q must be bracketed", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return Interval[T]{}, nil
	}
	hiField, loField, ranged := strings.Cut(inner, ":")
	hi, err := parseBound[T](hiField)
	if err != nil {
		return Interval[T]{}, err
	}
	if !ranged {
		return Single(hi), nil
	}
	if strings.Contains(loField, ":") {
		return Interval[T]{}, errors.Wrapf(ErrParse, "range %q has more than one ':'", s)
	}
	lo, err := parseBound[T](loField)
	if err != nil {
		return Interval[T]{}, err
	}
	return New(hi, lo), nil
}

// ParseBox parses one or more concatenated bracketed ranges, outermost
// axis first, e.g. "[3:0][12:-5]".
func ParseBox[T Value](s string) (Box[T], error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return Box[T]{}, errors.Wrap(ErrParse, "empty box expression")
	}
	var dims []Interval[T]
	for rest != "" {
		if rest[0] != '[' {
			return Box[T]{}, errors.Wrapf(ErrParse, "unexpected %q at offset %d", rest[0], len(s)-len(rest))
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return Box[T]{}, errors.Wrapf(ErrParse, "unterminated range at offset %d", len(s)-len(rest))
		}
		r, err := ParseInterval[T](rest[:end+1])
		if err != nil {
			return Box[T]{}, err
		}
		dims = append(dims, r)
		rest = strings.TrimSpace(rest[end+1:])
	}
	return Box[T]{dims: dims}, nil
}

// SplitSignal splits a netlist signal reference such as
// "data[3:0][12:-5]" into the bare name and its range. A reference with
// no range part yields the empty box.
func SplitSignal[T Value](s string) (string, Box[T], error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '[')
	if open < 0 {
		if s == "" {
			return "", Box[T]{}, errors.Wrap(ErrParse, "empty signal reference")
		}
		return s, Box[T]{}, nil
	}
	name := strings.TrimSpace(s[:open])
	if name == "" {
		return "", Box[T]{}, errors.Wrapf(ErrParse, "signal %q has no name", s)
	}
	b, err := ParseBox[T](s[open:])
	if err != nil {
		return "", Box[T]{}, err
	}
	return name, b, nil
}
