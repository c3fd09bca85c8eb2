package bref

import (
	"strconv"
	"strings"

	"brstats/lib/frame"
)

type renameRule struct {
	Old, New string
}

// teamRenameRules returns the unconditional rename rules plus the
// year-ranged rules that apply to the given season. Pass 0 to skip the
// ranged rules entirely.
func teamRenameRules(year int) []renameRule {
	var rules []renameRule
	for _, r := range teamReplacements {
		rules = append(rules, renameRule{Old: r.Old, New: r.New})
	}
	if year == 0 {
		return rules
	}
	for _, r := range rangeTeamReplacements {
		if year < r.First || year > r.Last {
			continue
		}
		rules = append(rules, renameRule{Old: r.Old, New: r.New})
	}
	return rules
}

// yearOfTeamID parses the season out of a team id like "SEA2018".
// Unparseable ids yield 0.
func yearOfTeamID(id string) int {
	if len(id) < 4 {
		return 0
	}
	year, err := strconv.Atoi(id[len(id)-4:])
	if err != nil {
		return 0
	}
	return year
}

// replacePartial rewrites old names wherever they appear inside the
// named columns' cells, which handles composite strings like a game
// name.
func replacePartial(f *frame.Frame, rules []renameRule, cols ...string) {
	for _, col := range cols {
		if !f.HasColumn(col) {
			continue
		}
		f.Apply(col, func(v frame.Value) frame.Value {
			if v.IsNull() || v.IsNum() {
				return v
			}
			s := v.String()
			for _, r := range rules {
				s = strings.ReplaceAll(s, r.Old, r.New)
			}
			return frame.Text(s)
		})
	}
}

// replaceExact rewrites cells of the named columns that hold an old
// name as their entire value.
func replaceExact(f *frame.Frame, rules []renameRule, cols ...string) {
	for _, col := range cols {
		if !f.HasColumn(col) {
			continue
		}
		f.Apply(col, func(v frame.Value) frame.Value {
			if v.IsNull() || v.IsNum() {
				return v
			}
			for _, r := range rules {
				if v.String() == r.Old {
					return frame.Text(r.New)
				}
			}
			return v
		})
	}
}

// replaceVenues rewrites the Venue column to current venue names.
func replaceVenues(f *frame.Frame) {
	if !f.HasColumn("Venue") {
		return
	}
	f.Apply("Venue", func(v frame.Value) frame.Value {
		if renamed, ok := venueReplacements[v.String()]; ok {
			return frame.Text(renamed)
		}
		return v
	})
}

// applyRowRenames rewrites the named columns row by row: the
// unconditional rules always apply, the ranged rules only when the row
// year (the trailing digits of yearCol's cell) falls in range. partial
// substitutes inside the cell text instead of matching whole cells.
func applyRowRenames(f *frame.Frame, yearCol string, partial bool, cols ...string) {
	var present []string
	for _, col := range cols {
		if f.HasColumn(col) {
			present = append(present, col)
		}
	}
	if len(present) == 0 || !f.HasColumn(yearCol) {
		return
	}

	for r := 0; r < f.Len(); r++ {
		year := yearOfTeamID(f.At(r, yearCol).String())
		rules := teamRenameRules(year)
		for _, col := range present {
			v := f.At(r, col)
			if v.IsNull() || v.IsNum() {
				continue
			}
			if partial {
				s := v.String()
				for _, rule := range rules {
					s = strings.ReplaceAll(s, rule.Old, rule.New)
				}
				f.Set(r, col, frame.Text(s))
				continue
			}
			for _, rule := range rules {
				if v.String() == rule.Old {
					f.Set(r, col, frame.Text(rule.New))
					break
				}
			}
		}
	}
}
