package catalog

import (
	"sort"
	"strings"

	"vayuhu/models"
)

// SortUnitCodes returns the units ordered lexicographic-numerically by
// unit code, so "EC2" sorts before "EC10". This is display order for the
// seat grid only; normalization keeps arrival order.
func SortUnitCodes(units []models.SpaceUnit) []models.SpaceUnit {
	sorted := make([]models.SpaceUnit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessUnitCode(sorted[i].UnitCode, sorted[j].UnitCode)
	})
	return sorted
}

// lessUnitCode compares codes segment by segment, treating runs of digits
// as numbers and everything else case-insensitively.
func lessUnitCode(a, b string) bool {
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		ac, bc := a[ai], b[bi]
		if isDigit(ac) && isDigit(bc) {
			an, aEnd := readNumber(a, ai)
			bn, bEnd := readNumber(b, bi)
			if an != bn {
				return an < bn
			}
			ai, bi = aEnd, bEnd
			continue
		}
		al, bl := lower(ac), lower(bc)
		if al != bl {
			return al < bl
		}
		ai++
		bi++
	}
	if len(a)-ai != len(b)-bi {
		return len(a)-ai < len(b)-bi
	}
	return strings.Compare(a, b) < 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func readNumber(s string, i int) (int, int) {
	n := 0
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, i
}
