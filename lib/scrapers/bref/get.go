package bref

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// progressTracker renders a terminal progress bar for a batch fetch
// unless the settings disable it.
func (s *Scraper) progressTracker(message string, total int) (*progress.Tracker, func()) {
	settings := s.opts.Current()
	if settings.PBDisable || settings.Quiet {
		return &progress.Tracker{Total: int64(total)}, func() {}
	}

	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stderr)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.Style().Visibility.ETA = true

	tracker := &progress.Tracker{Message: message, Total: int64(total)}
	pw.AppendTracker(tracker)
	go pw.Render()
	return tracker, func() {
		tracker.MarkAsDone()
		pw.Stop()
		for pw.IsRenderInProgress() {
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// Games fetches every game in refs. Invalid refs are dropped up front
// and duplicates fetched once. When strict is false a game that fails
// is logged and skipped, except that a rate limit response returns
// whatever was gathered so far.
func (s *Scraper) Games(ctx context.Context, refs []GameRef, strict bool) ([]*Game, error) {
	refs = dedupGameRefs(s.ValidateGames(refs))
	if len(refs) == 0 {
		return nil, nil
	}

	tracker, stop := s.progressTracker("fetching games", len(refs))
	defer stop()

	var results []*Game
	for _, ref := range refs {
		g, err := s.Game(ctx, ref)
		if err != nil {
			if strict {
				return results, err
			}
			s.opts.Write("error", "err", err)
			if errors.Is(err, ErrRateLimited) {
				s.opts.Write("cannot get game or subsequent games", "game", ref)
				return results, nil
			}
			s.opts.Write("cannot get game", "game", ref)
			tracker.Increment(1)
			continue
		}
		results = append(results, g)
		tracker.Increment(1)
	}
	return results, nil
}

// Players fetches every player in ids, dropping invalid and duplicate
// ids. Error handling matches Games.
func (s *Scraper) Players(ctx context.Context, ids []string, strict bool) ([]*Player, error) {
	ids = dedup(s.ValidatePlayers(ids))
	if len(ids) == 0 {
		return nil, nil
	}

	tracker, stop := s.progressTracker("fetching players", len(ids))
	defer stop()

	var results []*Player
	for _, id := range ids {
		p, err := s.Player(ctx, id)
		if err != nil {
			if strict {
				return results, err
			}
			s.opts.Write("error", "err", err)
			if errors.Is(err, ErrRateLimited) {
				s.opts.Write("cannot get player or subsequent players", "player", id)
				return results, nil
			}
			s.opts.Write("cannot get player", "player", id)
			tracker.Increment(1)
			continue
		}
		results = append(results, p)
		tracker.Increment(1)
	}
	return results, nil
}

// Teams fetches every team in refs, dropping invalid and duplicate
// refs. Unlike Games and Players, any failure stops the batch.
func (s *Scraper) Teams(ctx context.Context, refs []TeamRef) ([]*Team, error) {
	refs = dedupTeamRefs(s.ValidateTeams(refs))
	if len(refs) == 0 {
		return nil, nil
	}

	tracker, stop := s.progressTracker("fetching teams", len(refs))
	defer stop()

	var results []*Team
	for _, ref := range refs {
		t, err := s.Team(ctx, ref)
		if err != nil {
			return results, err
		}
		results = append(results, t)
		tracker.Increment(1)
	}
	return results, nil
}

func dedupGameRefs(refs []GameRef) []GameRef {
	seen := map[GameRef]bool{}
	var out []GameRef
	for _, r := range refs {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

func dedupTeamRefs(refs []TeamRef) []TeamRef {
	seen := map[TeamRef]bool{}
	var out []TeamRef
	for _, r := range refs {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
