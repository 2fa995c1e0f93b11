package domain

import (
	"cmp"
	"slices"

	m "gooze.dev/pkg/raygun/internal/model"
	pkg "gooze.dev/pkg/raygun/pkg"
)

// collectReports reads every spilled report back, ordered by source,
// operator and site, and tallies the score.
func collectReports(spill pkg.FileSpill[m.Report]) ([]m.Report, m.Score, error) {
	var score m.Score

	reports := make([]m.Report, 0, spill.Len())

	err := spill.Range(func(_ uint64, report m.Report) error {
		score.Add(report.Outcome)
		reports = append(reports, report)

		return nil
	})
	if err != nil {
		return nil, m.Score{}, err
	}

	slices.SortStableFunc(reports, compareReports)

	return reports, score, nil
}

func compareReports(a, b m.Report) int {
	return cmp.Or(
		cmp.Compare(a.Source, b.Source),
		cmp.Compare(a.Record.Operator, b.Record.Operator),
		cmp.Compare(a.Record.Index, b.Record.Index),
	)
}
