package domain

import (
	"errors"
	"testing"
)

func TestParseGameKind(t *testing.T) {
	for _, k := range AllGameKinds {
		got, err := ParseGameKind(string(k))
		if err != nil {
			t.Fatalf("ParseGameKind(%q): %v", k, err)
		}
		if got != k {
			t.Errorf("ParseGameKind(%q) = %q", k, got)
		}
	}

	for _, bad := range []string{"", "MemoryMatch", "chess", "memorymatch"} {
		if _, err := ParseGameKind(bad); !errors.Is(err, ErrUnknownGame) {
			t.Errorf("ParseGameKind(%q) = %v, want ErrUnknownGame", bad, err)
		}
	}
}

func TestGameProgressForKind(t *testing.T) {
	gp := GameProgress{
		MemoryMatch:   Progress{Score: 1, Played: 10},
		MathChallenge: Progress{Score: 2, Played: 20},
		ColorMatch:    Progress{Score: 3, Played: 30},
		SpeedClick:    Progress{Score: 4, Played: 40},
	}

	want := map[GameKind]Progress{
		GameMemoryMatch:   {Score: 1, Played: 10},
		GameMathChallenge: {Score: 2, Played: 20},
		GameColorMatch:    {Score: 3, Played: 30},
		GameSpeedClick:    {Score: 4, Played: 40},
	}
	for kind, p := range want {
		if got := gp.ForKind(kind); got != p {
			t.Errorf("ForKind(%s) = %+v, want %+v", kind, got, p)
		}
	}
}
