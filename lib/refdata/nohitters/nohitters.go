// Package nohitters indexes no-hitter records by game, player, and
// team so extractors can annotate their outputs. One source record is
// one no-hitter; the registry derives nine lookup maps from the
// records, split by kind: individual no-hitters, perfect games, and
// combined no-hitters.
package nohitters

import "sort"

// Record is one no-hitter. GameID may be empty for early games with
// no box score. GameType is "R" for regular season, "P" for
// postseason. Pitchers lists ids in the order they appeared; a single
// pitcher means an individual no-hitter, more means a combined one.
type Record struct {
	GameID   string
	Year     string
	Team     string
	GameType string
	Perfect  bool
	Pitchers []string
}

// PlayerEntry is one no-hitter from a player's point of view.
type PlayerEntry struct {
	Year     string
	Team     string
	GameType string
}

// TeamEntry is one individual no-hitter or perfect game from a team
// season's point of view.
type TeamEntry struct {
	PlayerID string
	GameType string
}

// TeamCombinedEntry is one pitcher's share of a combined no-hitter
// from a team season's point of view.
type TeamCombinedEntry struct {
	PlayerID string
	GameType string
	GameID   string
}

// Registry holds the derived lookups. Game maps key by game id,
// player maps by player id, team maps by team id (abbreviation plus
// year, e.g. "PHI2010"). Within each list postseason entries come
// before regular season ones.
type Registry struct {
	GameINH map[string]string
	GamePG  map[string]string
	GameCNH map[string][]string

	PlayerINH map[string][]PlayerEntry
	PlayerPG  map[string][]PlayerEntry
	PlayerCNH map[string][]PlayerEntry

	TeamINH map[string][]TeamEntry
	TeamPG  map[string][]TeamEntry
	TeamCNH map[string][]TeamCombinedEntry
}

// Build derives the registry from source records.
func Build(records []Record) *Registry {
	sorted := append([]Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GameType == "P" && sorted[j].GameType == "R"
	})

	r := &Registry{
		GameINH:   map[string]string{},
		GamePG:    map[string]string{},
		GameCNH:   map[string][]string{},
		PlayerINH: map[string][]PlayerEntry{},
		PlayerPG:  map[string][]PlayerEntry{},
		PlayerCNH: map[string][]PlayerEntry{},
		TeamINH:   map[string][]TeamEntry{},
		TeamPG:    map[string][]TeamEntry{},
		TeamCNH:   map[string][]TeamCombinedEntry{},
	}

	for _, rec := range sorted {
		if len(rec.Pitchers) == 0 {
			continue
		}
		teamID := rec.Team + rec.Year

		if len(rec.Pitchers) > 1 {
			if rec.GameID != "" {
				r.GameCNH[rec.GameID] = append([]string(nil), rec.Pitchers...)
			}
			for _, p := range rec.Pitchers {
				r.PlayerCNH[p] = append(r.PlayerCNH[p], PlayerEntry{
					Year:     rec.Year,
					Team:     rec.Team,
					GameType: rec.GameType,
				})
				r.TeamCNH[teamID] = append(r.TeamCNH[teamID], TeamCombinedEntry{
					PlayerID: p,
					GameType: rec.GameType,
					GameID:   rec.GameID,
				})
			}
			continue
		}

		p := rec.Pitchers[0]
		entry := PlayerEntry{Year: rec.Year, Team: rec.Team, GameType: rec.GameType}

		if rec.GameID != "" {
			r.GameINH[rec.GameID] = p
		}
		r.PlayerINH[p] = append(r.PlayerINH[p], entry)
		r.TeamINH[teamID] = append(r.TeamINH[teamID], TeamEntry{PlayerID: p, GameType: rec.GameType})

		if rec.Perfect {
			if rec.GameID != "" {
				r.GamePG[rec.GameID] = p
			}
			r.PlayerPG[p] = append(r.PlayerPG[p], entry)
			r.TeamPG[teamID] = append(r.TeamPG[teamID], TeamEntry{PlayerID: p, GameType: rec.GameType})
		}
	}
	return r
}

// Populated reports whether the registry holds any records at all.
// Annotation callers skip their work when it does not, so a failed
// load degrades to unannotated output instead of an error.
func (r *Registry) Populated() bool {
	return r != nil && len(r.PlayerINH)+len(r.PlayerCNH) > 0
}
