package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cogniboost/progress-system/internal/core/domain"
	"github.com/cogniboost/progress-system/internal/core/ports"
)

func TestProfileService_SubmitIntake_Success(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	svc := NewProfileService(repo, discardLogger)

	age := 34
	summary, err := svc.SubmitIntake(context.Background(), ports.IntakeInput{
		UserID:   user.ID,
		Age:      &age,
		Goal:     "memory",
		Concerns: []string{"focus", "recall"},
		PlayTime: "evening",
	})
	if err != nil {
		t.Fatalf("SubmitIntake returned error: %v", err)
	}
	if summary.ID != user.ID || summary.Name != user.Name || summary.Email != user.Email {
		t.Errorf("summary = %+v, want identity of %q", summary, user.ID)
	}

	stored := repo.byID[user.ID]
	if stored.Age == nil || *stored.Age != 34 {
		t.Errorf("stored age = %v, want 34", stored.Age)
	}
	if stored.Questionnaire == nil || stored.Questionnaire.Goal != "memory" {
		t.Errorf("stored questionnaire = %+v", stored.Questionnaire)
	}
}

func TestProfileService_SubmitIntake_LastWriteWins(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	svc := NewProfileService(repo, discardLogger)

	first := ports.IntakeInput{
		UserID: user.ID, Goal: "memory",
		Concerns: []string{"focus"}, PlayTime: "morning",
	}
	age := 40
	second := ports.IntakeInput{
		UserID: user.ID, Age: &age, Goal: "speed",
		Concerns: []string{"reaction"}, PlayTime: "evening",
	}

	if _, err := svc.SubmitIntake(context.Background(), first); err != nil {
		t.Fatalf("first intake failed: %v", err)
	}
	if _, err := svc.SubmitIntake(context.Background(), second); err != nil {
		t.Fatalf("second intake failed: %v", err)
	}

	stored := repo.byID[user.ID]
	q := stored.Questionnaire
	if q == nil || q.Goal != "speed" || q.PlayTime != "evening" {
		t.Fatalf("stored questionnaire = %+v, want only the second payload", q)
	}
	if len(q.Concerns) != 1 || q.Concerns[0] != "reaction" {
		t.Errorf("concerns = %v, want no merge with the first payload", q.Concerns)
	}
	if stored.Age == nil || *stored.Age != 40 {
		t.Errorf("age = %v, want 40", stored.Age)
	}
}

func TestProfileService_SubmitIntake_UserGone(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo, discardLogger)

	_, err := svc.SubmitIntake(context.Background(), ports.IntakeInput{UserID: "missing", Goal: "memory"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileService_Get(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	repo.byID[user.ID].GameProgress.ColorMatch = domain.Progress{Score: 12, Played: 2}
	svc := NewProfileService(repo, discardLogger)

	got, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.GameProgress.ColorMatch.Score != 12 {
		t.Errorf("progress not returned: %+v", got.GameProgress)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
