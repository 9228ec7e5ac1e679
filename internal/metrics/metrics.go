// Package metrics computes citation-impact indicators from publication
// citation counts. All functions are pure and deterministic.
package metrics

import "sort"

// HIndex returns the largest k such that at least k publications have
// k or more citations each.
func HIndex(citations []int) int {
	sorted := make([]int, len(citations))
	copy(sorted, citations)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	h := 0
	for i, c := range sorted {
		if c >= i+1 {
			h = i + 1
		} else {
			break
		}
	}
	return h
}

// I10Index returns the number of publications with at least 10
// citations.
func I10Index(citations []int) int {
	count := 0
	for _, c := range citations {
		if c >= 10 {
			count++
		}
	}
	return count
}

// MIndex returns the h-index divided by career length in years, where
// career length runs from the earliest publication year to currentYear
// inclusive of the first year. It returns 0 when no publication year
// is known.
func MIndex(hIndex int, years []int, currentYear int) float64 {
	if len(years) == 0 {
		return 0
	}
	first := years[0]
	for _, y := range years[1:] {
		if y < first {
			first = y
		}
	}
	span := currentYear - first + 1
	if span <= 0 {
		return 0
	}
	return float64(hIndex) / float64(span)
}

// Summary bundles the computed indicators for one researcher.
type Summary struct {
	HIndex   int     `json:"h_index"`
	I10Index int     `json:"i10_index"`
	MIndex   float64 `json:"m_index"`
}

// Compute derives a Summary from citation counts and known publication
// years.
func Compute(citations []int, years []int, currentYear int) Summary {
	h := HIndex(citations)
	return Summary{
		HIndex:   h,
		I10Index: I10Index(citations),
		MIndex:   MIndex(h, years, currentYear),
	}
}
