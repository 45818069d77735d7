package repl

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatArray renders s as "[ 1 2 3 ]".
func FormatArray(s []int) string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, v := range s {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(' ')
	}
	b.WriteByte(']')
	return b.String()
}

// ParseArray parses integers separated by commas or whitespace.
func ParseArray(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, ErrEmptyArray
	}

	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %q", ErrInvalidArray, i+1, f)
		}
		values[i] = v
	}
	return values, nil
}
