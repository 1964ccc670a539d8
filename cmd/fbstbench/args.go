package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
)

var errUsage = errors.New("usage: fbstbench [flags] <number_of_entries> <entry_size> <number_of_queries>")

// Args holds the positional arguments.
type Args struct {
	Entries int
	Width   format.Width
	Queries int
}

// parseArgs parses the three positional arguments. Entry sizes other than
// 1, 2 or 4, including ones that are not numbers, select 8-byte entries.
func parseArgs(positional []string) (Args, error) {
	if len(positional) != 3 {
		return Args{}, errUsage
	}

	entries, err := parseCount("number_of_entries", positional[0])
	if err != nil {
		return Args{}, err
	}
	if entries == 0 {
		return Args{}, fmt.Errorf("%w: table must have at least 1 entry", errs.ErrEmptyInput)
	}

	size, err := strconv.ParseUint(positional[1], 10, 64)
	if err != nil {
		size = 0
	}

	queries, err := parseCount("number_of_queries", positional[2])
	if err != nil {
		return Args{}, err
	}

	return Args{Entries: entries, Width: format.ParseWidth(size), Queries: queries}, nil
}

func parseCount(name, arg string) (int, error) {
	n, err := strconv.ParseUint(arg, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}

	return int(n), nil
}

// parseSizes parses a comma-separated list of table sizes.
func parseSizes(list string) ([]int, error) {
	fields := strings.Split(list, ",")
	sizes := make([]int, 0, len(fields))

	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		n, err := parseCount("sweep size", field)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}
