package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"todos/internal/tasklist"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a single task reference: a 1-based task number as
// printed by the list command.
func ParseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	return parseNumber(args[0])
}

// ParseTaskRefs parses one or more task references.
//
// Each argument is either a number ("3") or an inclusive range ("2-4").
// Every number must lie in 1..count; ranges are checked before they are
// expanded. Duplicates are dropped; the first occurrence keeps its place.
func ParseTaskRefs(args []string, count int) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}

	var refs []int
	seen := make(map[int]bool)
	add := func(n int) {
		if !seen[n] {
			seen[n] = true
			refs = append(refs, n)
		}
	}

	for _, arg := range args {
		if lo, hi, ok := strings.Cut(arg, "-"); ok {
			from, err := parseNumber(lo)
			if err != nil {
				return nil, fmt.Errorf("invalid task reference: %s", arg)
			}
			to, err := parseNumber(hi)
			if err != nil || to < from {
				return nil, fmt.Errorf("invalid task reference: %s", arg)
			}
			if err := checkRange(from, count); err != nil {
				return nil, err
			}
			if err := checkRange(to, count); err != nil {
				return nil, err
			}
			for n := from; n <= to; n++ {
				add(n)
			}
			continue
		}

		n, err := parseNumber(arg)
		if err != nil {
			return nil, err
		}
		if err := checkRange(n, count); err != nil {
			return nil, err
		}
		add(n)
	}
	return refs, nil
}

func checkRange(n, count int) error {
	if n < 1 || n > count {
		return fmt.Errorf("%w: %d", tasklist.ErrOutOfRange, n)
	}
	return nil
}

func parseNumber(s string) (int, error) {
	if !isAllDigits(s) {
		return 0, fmt.Errorf("invalid task reference: %s", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task reference: %s", s)
	}
	return n, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
