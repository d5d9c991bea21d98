package cmd

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ademuri/hits-dashboard/internal/view"
)

var singleYear = regexp.MustCompile(`^\s*(\d{4})\s*$`)
var yearSpan = regexp.MustCompile(`^\s*(\d{4})\s*[:-]\s*(\d{4})\s*$`)

// parseYearRange accepts 'yyyy' for a single year, or 'yyyy:yyyy' (also
// 'yyyy-yyyy') for an inclusive range.
func parseYearRange(s string) (r view.YearRange, err error) {
	if m := singleYear.FindStringSubmatch(s); m != nil {
		r.From, err = strconv.Atoi(m[1])
		if err != nil {
			err = fmt.Errorf("Parsing year: %w", err)
			return
		}
		r.To = r.From
		return
	}

	if m := yearSpan.FindStringSubmatch(s); m != nil {
		r.From, err = strconv.Atoi(m[1])
		if err != nil {
			err = fmt.Errorf("Parsing start year: %w", err)
			return
		}
		r.To, err = strconv.Atoi(m[2])
		if err != nil {
			err = fmt.Errorf("Parsing end year: %w", err)
			return
		}
		if r.From > r.To {
			err = fmt.Errorf("Invalid range: %d is after %d", r.From, r.To)
		}
		return
	}

	err = fmt.Errorf("Invalid format: %q", s)
	return
}

// parseYearRangeFromArgs is parseYearRange for positional arguments: one
// argument is parsed as above, two are taken as start and end years.
func parseYearRangeFromArgs(args []string) (r view.YearRange, err error) {
	switch len(args) {
	case 1:
		return parseYearRange(args[0])

	case 2:
		return parseYearRange(args[0] + ":" + args[1])

	default:
		err = fmt.Errorf("Expected one or two year arguments")
	}
	return
}
