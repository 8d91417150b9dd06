package requesttable

import (
	"slices"
	"strconv"
	"strings"

	"github.com/easi-app/easi-server/internal/domain"
)

// FormatFundingSources groups sources by project number as
// "123456 (Research, HITECH Medicaid), 654321 (Prog Ops)".
// Numeric project numbers come first in ascending order, then the rest in
// first-seen order. Investments keep their input order within a group.
func FormatFundingSources(sources []domain.FundingSource) string {
	if len(sources) == 0 {
		return ""
	}

	var order []string
	groups := make(map[string][]string)
	for _, fs := range sources {
		if _, ok := groups[fs.ProjectNumber]; !ok {
			order = append(order, fs.ProjectNumber)
		}
		groups[fs.ProjectNumber] = append(groups[fs.ProjectNumber], fs.Investment)
	}

	slices.SortStableFunc(order, compareProjectNumbers)

	parts := make([]string, 0, len(order))
	for _, pn := range order {
		parts = append(parts, pn+" ("+strings.Join(groups[pn], ", ")+")")
	}
	return strings.Join(parts, ", ")
}

func compareProjectNumbers(a, b string) int {
	an, aErr := strconv.ParseUint(a, 10, 64)
	bn, bErr := strconv.ParseUint(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return 0
}
