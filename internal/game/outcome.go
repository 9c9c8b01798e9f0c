package game

import "rps_server/internal/domain"

// StatDelta is the statistics increment a resolved round contributes
// to one player.
type StatDelta struct {
	Wins   int
	Losses int
	Draws  int
}

// ApplyTo adds the delta to a player's cumulative counters.
func (d StatDelta) ApplyTo(s *domain.PlayerStats) {
	s.Wins += d.Wins
	s.Losses += d.Losses
	s.Draws += d.Draws
}

// ComputeRoundOutcome resolves a pair of moves into the round result
// and the statistics deltas for player 1 and player 2. Total over all
// nine move pairs.
func ComputeRoundOutcome(move1, move2 domain.Move) (domain.Result, StatDelta, StatDelta) {
	if move1 == move2 {
		return domain.ResultDraw, StatDelta{Draws: 1}, StatDelta{Draws: 1}
	}
	if beats(move1, move2) {
		return domain.ResultPlayer1Wins, StatDelta{Wins: 1}, StatDelta{Losses: 1}
	}
	return domain.ResultPlayer2Wins, StatDelta{Losses: 1}, StatDelta{Wins: 1}
}

// beats reports whether a defeats b under the cyclic dominance rule:
// piedra beats tijera, tijera beats papel, papel beats piedra.
func beats(a, b domain.Move) bool {
	switch a {
	case domain.MovePiedra:
		return b == domain.MoveTijera
	case domain.MovePapel:
		return b == domain.MovePiedra
	case domain.MoveTijera:
		return b == domain.MovePapel
	}
	return false
}
