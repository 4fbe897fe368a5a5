package compare

// ProfileSummary — итог по одной паре (работы, машины).
// Table == nil, если все экземпляры профиля исключены; причины в Skipped.
type ProfileSummary struct {
	Profile string
	Table   *Table
	Skipped []Skipped
}

// ByProfile разбивает пакет по профилям для исследования масштабирования.
// Порядок — по первому появлению профиля среди строк, затем профили,
// встречающиеся только среди исключённых экземпляров.
func (t *Table) ByProfile() ([]ProfileSummary, error) {
	var order []string
	groups := make(map[string][]Observation)
	skipped := make(map[string][]Skipped)

	for _, row := range t.Rows {
		p := row.Key.Profile()
		if _, ok := groups[p]; !ok {
			order = append(order, p)
		}
		groups[p] = append(groups[p], Observation{Key: row.Key, Cmax: row.Cmax})
	}
	for _, s := range t.Skipped {
		p := s.Key.Profile()
		_, seenRows := groups[p]
		_, seenSkipped := skipped[p]
		if !seenRows && !seenSkipped {
			order = append(order, p)
		}
		skipped[p] = append(skipped[p], s)
	}

	out := make([]ProfileSummary, 0, len(order))
	for _, p := range order {
		summary := ProfileSummary{Profile: p, Skipped: skipped[p]}
		if len(groups[p]) > 0 {
			sub, err := Build(t.Candidates, groups[p], skipped[p], t.Summary.Rank)
			if err != nil {
				return nil, err
			}
			summary.Table = sub
		}
		out = append(out, summary)
	}
	return out, nil
}
