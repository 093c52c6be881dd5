package subset

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrEmptyLine is returned by ParseLine for a line with no fields.
var ErrEmptyLine = errors.New("empty line")

// ParseLine parses one corpus line of the form "word c1 c2 ... cD".
// Components are rounded to precision decimal places. A component count
// other than dims yields a *DimensionError; a non-numeric component yields
// the underlying strconv error.
func ParseLine(line string, dims, precision int) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Entry{}, ErrEmptyLine
	}
	return parseFields(fields[0], fields[1:], dims, precision)
}

func parseFields(word string, components []string, dims, precision int) (Entry, error) {
	if len(components) != dims {
		return Entry{}, &DimensionError{Word: word, Got: len(components), Want: dims}
	}

	pow := math.Pow(10, float64(precision))
	vector := make([]float64, dims)
	for i, c := range components {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return Entry{}, err
		}
		vector[i] = math.Round(v*pow) / pow
	}

	return Entry{Word: word, Vector: vector}, nil
}
