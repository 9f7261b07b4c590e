package scoring

import "testing"

func TestMathRound_StreakAwards(t *testing.T) {
	var r MathRound

	want := []int{10, 12, 14}
	for i, w := range want {
		if got := r.Correct(); got != w {
			t.Errorf("answer %d: awarded %d, want %d", i+1, got, w)
		}
	}
	if r.Score() != 36 {
		t.Errorf("cumulative score = %d, want 36", r.Score())
	}
	if r.Streak() != 3 {
		t.Errorf("streak = %d, want 3", r.Streak())
	}
}

func TestMathRound_WrongResetsStreak(t *testing.T) {
	var r MathRound

	r.Correct() // 10
	r.Correct() // 12
	r.Wrong()

	if r.Streak() != 0 {
		t.Fatalf("streak after wrong answer = %d, want 0", r.Streak())
	}
	if got := r.Correct(); got != 10 {
		t.Errorf("award after reset = %d, want 10", got)
	}
	if r.Score() != 32 {
		t.Errorf("score = %d, want 32", r.Score())
	}
}

func TestMathRound_WrongAwardsNothing(t *testing.T) {
	var r MathRound
	r.Wrong()
	if r.Score() != 0 {
		t.Errorf("score after only wrong answers = %d, want 0", r.Score())
	}
}

func TestMemoryMatchScore(t *testing.T) {
	tests := []struct {
		name           string
		moves, elapsed int
		want           int
	}{
		{"spec scenario", 20, 50, 82},
		{"fast clean round", 8, 10, 102},
		{"many moves floors at zero", 250, 100, 0},
		{"zero elapsed clamps to one second", 10, 0, 190},
		{"negative elapsed clamps too", 10, -5, 190},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MemoryMatchScore(tt.moves, tt.elapsed); got != tt.want {
				t.Errorf("MemoryMatchScore(%d, %d) = %d, want %d", tt.moves, tt.elapsed, got, tt.want)
			}
		})
	}
}
