// Package scoring holds the scoring rules the game clients apply locally
// before submitting a final score. Keeping them here gives the server a
// single source of truth should a plausibility check ever move server-side.
package scoring

// MathRound accumulates the math-challenge score for one fixed-duration
// round. Each correct answer awards 10 + 2×streak points, where streak
// counts consecutive correct answers before this one. A wrong answer
// resets the streak and awards nothing.
type MathRound struct {
	score  int
	streak int
}

// Correct records a correct answer and returns the points it awarded.
func (r *MathRound) Correct() int {
	points := 10 + 2*r.streak
	r.score += points
	r.streak++
	return points
}

// Wrong records a wrong answer. The streak resets; the score is untouched.
func (r *MathRound) Wrong() {
	r.streak = 0
}

// Score returns the cumulative score so far (final at timer expiry).
func (r *MathRound) Score() int { return r.score }

// Streak returns the current run of consecutive correct answers.
func (r *MathRound) Streak() int { return r.streak }

// MemoryMatchScore computes the final memory-match score from the move count
// and elapsed time of a completed board: max(0, 100 - moves + 100/elapsed).
// Elapsed time is clamped to at least one second so an instant finish cannot
// divide by zero.
func MemoryMatchScore(moves, elapsedSeconds int) int {
	if elapsedSeconds < 1 {
		elapsedSeconds = 1
	}
	score := 100 - moves + 100/elapsedSeconds
	if score < 0 {
		return 0
	}
	return score
}
