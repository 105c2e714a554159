package rowrange

import (
	"sort"
	"strconv"
	"strings"
)

const allToken = "all"

// Parser resolves row-selection expressions to row indices.
type Parser struct {
}

// New ...
func New() *Parser {
	return &Parser{}
}

// Parse resolves expr against rowCount rows. The literal "all" selects
// every row. Otherwise expr is a comma-separated list of 1-based row
// numbers or A-B ranges, range bounds in either order. Tokens that do
// not parse are skipped. The result is filtered to [0, rowCount),
// deduplicated and ascending.
func (p *Parser) Parse(expr string, rowCount int) []int {
	if expr == allToken {
		indices := make([]int, rowCount)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	set := make(map[int]struct{})
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.Contains(token, "-") {
			parts := strings.Split(token, "-")
			a, errA := strconv.Atoi(parts[0])
			b, errB := strconv.Atoi(parts[1])
			if errA != nil || errB != nil {
				continue
			}
			if a > b {
				a, b = b, a
			}
			for i := a; i <= b; i++ {
				set[i-1] = struct{}{}
			}
			continue
		}
		if n, err := strconv.Atoi(token); err == nil {
			set[n-1] = struct{}{}
		}
	}

	indices := make([]int, 0, len(set))
	for idx := range set {
		if idx >= 0 && idx < rowCount {
			indices = append(indices, idx)
		}
	}
	sort.Ints(indices)
	return indices
}
