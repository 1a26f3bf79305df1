// Package report combines two independently-built half-assemblies that
// share a base layer into the count of complete, connected assemblies
// they form together.
package report

import "github.com/katalvlaran/rectilinear/brick"

// Report is one base's connectivity-colour-keyed count entry: Colors[i]
// is the component colour (0-indexed; colour 0 means "connected to brick
// 0") that the half-assembly assigns to base brick i+1.
type Report struct {
	Base             uint8
	Colors           []uint8
	BaseSymmetric180 bool
	BaseSymmetric90  bool
	Counts           brick.Counts
}

// Connected reports whether combining a and b's half-assemblies over
// their shared base yields a single connected whole: brick 0 is always
// connected to itself, any brick coloured 0 in either half is connected
// to brick 0, and any two bricks sharing a non-zero colour in either half
// are connected to each other (connections compose transitively).
func Connected(a, b Report) bool {
	n := int(a.Base) - 1
	if n <= 0 {
		return true
	}
	confirmed := make([]bool, n)
	count := 1
	for i := 0; i < n; i++ {
		if a.Colors[i] == 0 || b.Colors[i] == 0 {
			confirmed[i] = true
			count++
		}
	}
	for {
		progressed := false
		for i := 0; i < n; i++ {
			if confirmed[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if i == j || !confirmed[j] {
					continue
				}
				if a.Colors[i] == a.Colors[j] || b.Colors[i] == b.Colors[j] {
					confirmed[i] = true
					count++
					progressed = true
					break
				}
			}
		}
		if !progressed {
			break
		}
	}
	return count == int(a.Base)
}

// CountUp returns the number of complete assemblies formed by combining
// reportA's and reportB's half-assemblies, zero if they would not be
// connected. When the shared base is itself symmetric, the formula
// accounts for the overlap between reflections of A and B so a symmetric
// pairing isn't counted twice.
func CountUp(reportA, reportB Report) brick.Counts {
	if !Connected(reportA, reportB) {
		return brick.Counts{}
	}
	a, b := reportA.Counts, reportB.Counts

	if !reportA.BaseSymmetric180 {
		return brick.Counts{All: a.All * b.All}
	}

	nonSym := func(c brick.Counts) brick.Counts {
		c.All -= c.Symmetric180
		c.Symmetric180 -= c.Symmetric90
		return c
	}
	A, B := nonSym(a), nonSym(b)

	if reportA.BaseSymmetric90 {
		return brick.Counts{
			All:          a.All*B.All + A.All*B.Symmetric180 + A.All*B.Symmetric90,
			Symmetric180: a.Symmetric180*b.Symmetric180 - A.Symmetric90*B.Symmetric90,
			Symmetric90:  A.Symmetric90 * B.Symmetric90,
		}
	}

	return brick.Counts{
		All:          a.All*B.All + A.All*B.Symmetric180,
		Symmetric180: A.Symmetric180 * B.Symmetric180,
	}
}

// GetReports decodes a token->Counts map (as produced by a single base's
// wave expansion) into Reports, extracting each token's base-1
// connectivity-colour digits in original left-to-right brick order.
func GetReports(counts map[int64]brick.Counts, base uint8, baseSymmetric180, baseSymmetric90 bool) []Report {
	reports := make([]Report, 0, len(counts))
	for token, c := range counts {
		n := int(base) - 1
		colors := make([]uint8, n)
		t := token
		for i := n - 1; i >= 0; i-- {
			colors[i] = uint8(t%10) - 1
			t /= 10
		}
		reports = append(reports, Report{
			Base:             base,
			Colors:           colors,
			BaseSymmetric180: baseSymmetric180,
			BaseSymmetric90:  baseSymmetric90,
			Counts:           c,
		})
	}
	return reports
}
