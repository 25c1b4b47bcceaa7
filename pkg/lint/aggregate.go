package lint

import "sort"

// SortFindings orders findings deterministically: severity (errors first),
// then source position in document order, then rule ID. The sort is
// stable, so equal keys keep their first-seen order and reruns on
// identical input produce byte-identical reports.
//
// No findings are ever dropped or merged: two rules flagging the same
// element for different reasons both appear.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]

		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.RuleID < b.RuleID
	})
}

// CountBySeverity tallies findings per severity string.
func CountBySeverity(findings []Finding) map[string]int {
	counts := make(map[string]int)
	for _, f := range findings {
		counts[string(f.Severity)]++
	}
	return counts
}
