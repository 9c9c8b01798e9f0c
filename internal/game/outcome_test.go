package game

import (
	"testing"

	"rps_server/internal/domain"
)

func TestComputeRoundOutcome(t *testing.T) {
	cases := []struct {
		move1, move2 domain.Move
		want         domain.Result
	}{
		{domain.MovePiedra, domain.MovePiedra, domain.ResultDraw},
		{domain.MovePiedra, domain.MovePapel, domain.ResultPlayer2Wins},
		{domain.MovePiedra, domain.MoveTijera, domain.ResultPlayer1Wins},
		{domain.MovePapel, domain.MovePiedra, domain.ResultPlayer1Wins},
		{domain.MovePapel, domain.MovePapel, domain.ResultDraw},
		{domain.MovePapel, domain.MoveTijera, domain.ResultPlayer2Wins},
		{domain.MoveTijera, domain.MovePiedra, domain.ResultPlayer2Wins},
		{domain.MoveTijera, domain.MovePapel, domain.ResultPlayer1Wins},
		{domain.MoveTijera, domain.MoveTijera, domain.ResultDraw},
	}

	for _, tc := range cases {
		got, _, _ := ComputeRoundOutcome(tc.move1, tc.move2)
		if got != tc.want {
			t.Fatalf("ComputeRoundOutcome(%s,%s) = %s; want %s", tc.move1, tc.move2, got, tc.want)
		}
	}
}

// Swapping the inputs must swap the players' results and keep draws.
func TestComputeRoundOutcomeSymmetry(t *testing.T) {
	moves := []domain.Move{domain.MovePiedra, domain.MovePapel, domain.MoveTijera}

	for _, a := range moves {
		for _, b := range moves {
			forward, f1, f2 := ComputeRoundOutcome(a, b)
			backward, b1, b2 := ComputeRoundOutcome(b, a)

			switch forward {
			case domain.ResultDraw:
				if backward != domain.ResultDraw {
					t.Fatalf("(%s,%s) draw but (%s,%s) = %s", a, b, b, a, backward)
				}
			case domain.ResultPlayer1Wins:
				if backward != domain.ResultPlayer2Wins {
					t.Fatalf("(%s,%s) player1Wins but (%s,%s) = %s", a, b, b, a, backward)
				}
			case domain.ResultPlayer2Wins:
				if backward != domain.ResultPlayer1Wins {
					t.Fatalf("(%s,%s) player2Wins but (%s,%s) = %s", a, b, b, a, backward)
				}
			}

			if f1 != b2 || f2 != b1 {
				t.Fatalf("stat deltas not symmetric for (%s,%s): %+v/%+v vs %+v/%+v", a, b, f1, f2, b1, b2)
			}
		}
	}
}

func TestStatDeltasMatchResult(t *testing.T) {
	moves := []domain.Move{domain.MovePiedra, domain.MovePapel, domain.MoveTijera}

	for _, a := range moves {
		for _, b := range moves {
			result, d1, d2 := ComputeRoundOutcome(a, b)

			// Each delta touches exactly one counter.
			if d1.Wins+d1.Losses+d1.Draws != 1 || d2.Wins+d2.Losses+d2.Draws != 1 {
				t.Fatalf("deltas for (%s,%s) must each total 1: %+v %+v", a, b, d1, d2)
			}

			switch result {
			case domain.ResultDraw:
				if d1.Draws != 1 || d2.Draws != 1 {
					t.Fatalf("draw (%s,%s) deltas: %+v %+v", a, b, d1, d2)
				}
			case domain.ResultPlayer1Wins:
				if d1.Wins != 1 || d2.Losses != 1 {
					t.Fatalf("player1Wins (%s,%s) deltas: %+v %+v", a, b, d1, d2)
				}
			case domain.ResultPlayer2Wins:
				if d1.Losses != 1 || d2.Wins != 1 {
					t.Fatalf("player2Wins (%s,%s) deltas: %+v %+v", a, b, d1, d2)
				}
			}
		}
	}
}
