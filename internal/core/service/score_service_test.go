package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cogniboost/progress-system/internal/core/domain"
	"github.com/cogniboost/progress-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	nextID    int
	failWith  error // if set, every call returns this error
	writeSeen int   // number of mutating calls that reached the store
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) addUser(u *domain.User) *domain.User {
	r.nextID++
	clone := *u
	if clone.ID == "" {
		clone.ID = "user-" + strconv.Itoa(r.nextID)
	}
	r.byID[clone.ID] = &clone
	r.byEmail[clone.Email] = &clone
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.writeSeen++
	created := r.addUser(user)
	clone := *created
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// RecordScore mirrors the real Mongo repository: one atomic update returning
// the pre-image of the progress record.
func (r *stubUserRepo) RecordScore(_ context.Context, userID string, kind domain.GameKind, score int) (domain.Progress, error) {
	if r.failWith != nil {
		return domain.Progress{}, r.failWith
	}
	u, ok := r.byID[userID]
	if !ok {
		return domain.Progress{}, domain.ErrUserNotFound
	}

	before := u.GameProgress.ForKind(kind)
	after := domain.Progress{Score: before.Score, Played: before.Played + 1}
	if score > after.Score {
		after.Score = score
	}

	switch kind {
	case domain.GameMemoryMatch:
		u.GameProgress.MemoryMatch = after
	case domain.GameMathChallenge:
		u.GameProgress.MathChallenge = after
	case domain.GameColorMatch:
		u.GameProgress.ColorMatch = after
	case domain.GameSpeedClick:
		u.GameProgress.SpeedClick = after
	}
	r.writeSeen++
	return before, nil
}

func (r *stubUserRepo) SetQuestionnaire(_ context.Context, userID string, age *int, q domain.Questionnaire) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.byID[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Age = age
	qCopy := q
	u.Questionnaire = &qCopy
	r.writeSeen++
	clone := *u
	return &clone, nil
}

// stubDedup records marked keys in memory.
type stubDedup struct {
	seen    map[string]bool
	failErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(userID string, kind domain.GameKind, id string) string {
	return userID + ":" + string(kind) + ":" + id
}

func (d *stubDedup) IsDuplicate(_ context.Context, userID string, kind domain.GameKind, id string) (bool, error) {
	if d.failErr != nil {
		return false, d.failErr
	}
	return d.seen[d.key(userID, kind, id)], nil
}

func (d *stubDedup) Mark(_ context.Context, userID string, kind domain.GameKind, id string) error {
	if d.failErr != nil {
		return d.failErr
	}
	d.seen[d.key(userID, kind, id)] = true
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func seedPlayer(repo *stubUserRepo) *domain.User {
	return repo.addUser(&domain.User{
		Name:  "Asha",
		Email: "asha@example.com",
	})
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestScoreService_Submit_SpecScenario(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	repo.byID[user.ID].GameProgress.MathChallenge = domain.Progress{Score: 40, Played: 3}
	svc := NewScoreService(repo, nil, discardLogger)

	// Lower score: played advances, stored score holds.
	res, err := svc.Submit(context.Background(), ports.SubmitScoreInput{
		UserID: user.ID, Game: "mathChallenge", Score: 35,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NewHighScore {
		t.Error("35 must not beat a stored 40")
	}
	got := repo.byID[user.ID].GameProgress.MathChallenge
	if got.Score != 40 || got.Played != 4 {
		t.Errorf("stored = %+v, want {Score:40 Played:4}", got)
	}

	// Higher score: both advance.
	res, err = svc.Submit(context.Background(), ports.SubmitScoreInput{
		UserID: user.ID, Game: "mathChallenge", Score: 55,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NewHighScore {
		t.Error("55 must beat a stored 40")
	}
	got = repo.byID[user.ID].GameProgress.MathChallenge
	if got.Score != 55 || got.Played != 5 {
		t.Errorf("stored = %+v, want {Score:55 Played:5}", got)
	}
}

func TestScoreService_Submit_EqualScoreIsNotHigh(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	repo.byID[user.ID].GameProgress.SpeedClick = domain.Progress{Score: 30, Played: 1}
	svc := NewScoreService(repo, nil, discardLogger)

	res, err := svc.Submit(context.Background(), ports.SubmitScoreInput{
		UserID: user.ID, Game: "speedClick", Score: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NewHighScore {
		t.Error("equal score must not report a new high score")
	}
	if got := repo.byID[user.ID].GameProgress.SpeedClick; got.Score != 30 || got.Played != 2 {
		t.Errorf("stored = %+v, want {Score:30 Played:2}", got)
	}
}

func TestScoreService_Submit_MonotonicAcrossSequence(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	svc := NewScoreService(repo, nil, discardLogger)

	scores := []int{12, 40, 7, 40, 39, 41, 0}
	maxSeen := 0
	for _, sc := range scores {
		if _, err := svc.Submit(context.Background(), ports.SubmitScoreInput{
			UserID: user.ID, Game: "memoryMatch", Score: sc,
		}); err != nil {
			t.Fatalf("submit %d: %v", sc, err)
		}
		if sc > maxSeen {
			maxSeen = sc
		}
		got := repo.byID[user.ID].GameProgress.MemoryMatch
		if got.Score != maxSeen {
			t.Fatalf("after submitting %d: stored score = %d, want %d", sc, got.Score, maxSeen)
		}
	}

	if got := repo.byID[user.ID].GameProgress.MemoryMatch.Played; got != len(scores) {
		t.Errorf("played = %d, want %d", got, len(scores))
	}
}

func TestScoreService_Submit_UnknownGame(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	svc := NewScoreService(repo, nil, discardLogger)

	_, err := svc.Submit(context.Background(), ports.SubmitScoreInput{
		UserID: user.ID, Game: "unknownGame", Score: 10,
	})
	if !errors.Is(err, domain.ErrUnknownGame) {
		t.Fatalf("expected ErrUnknownGame, got %v", err)
	}
	if repo.writeSeen != 0 {
		t.Errorf("no write may reach the store on a rejected kind, saw %d", repo.writeSeen)
	}
}

func TestScoreService_Submit_UserGone(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewScoreService(repo, nil, discardLogger)

	_, err := svc.Submit(context.Background(), ports.SubmitScoreInput{
		UserID: "missing", Game: "colorMatch", Score: 10,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestScoreService_Submit_StorageError(t *testing.T) {
	repo := newStubUserRepo()
	repo.failWith = errors.New("db unavailable")
	svc := NewScoreService(repo, nil, discardLogger)

	_, err := svc.Submit(context.Background(), ports.SubmitScoreInput{
		UserID: "user-1", Game: "colorMatch", Score: 10,
	})
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// Duplicate-submission tests
// ---------------------------------------------------------------------------

func TestScoreService_Submit_DuplicateSkipsWrite(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	dedup := newStubDedup()
	svc := NewScoreService(repo, dedup, discardLogger)

	in := ports.SubmitScoreInput{UserID: user.ID, Game: "mathChallenge", Score: 20, SubmissionID: "sub-1"}

	first, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if first.Duplicate || !first.NewHighScore {
		t.Fatalf("first submit: %+v, want new high score, not duplicate", first)
	}

	second, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !second.Duplicate {
		t.Error("replay must report Duplicate=true")
	}
	if second.NewHighScore {
		t.Error("replay must not report a new high score")
	}
	if got := repo.byID[user.ID].GameProgress.MathChallenge.Played; got != 1 {
		t.Errorf("played = %d after replay, want 1", got)
	}
}

func TestScoreService_Submit_DedupFailureProcessesAnyway(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	dedup := newStubDedup()
	dedup.failErr = errors.New("redis down")
	svc := NewScoreService(repo, dedup, discardLogger)

	res, err := svc.Submit(context.Background(), ports.SubmitScoreInput{
		UserID: user.ID, Game: "mathChallenge", Score: 20, SubmissionID: "sub-1",
	})
	if err != nil {
		t.Fatalf("submit must survive a dedup outage: %v", err)
	}
	if !res.NewHighScore {
		t.Error("submission must still be processed")
	}
}

func TestScoreService_Submit_NoSubmissionIDSkipsDedup(t *testing.T) {
	repo := newStubUserRepo()
	user := seedPlayer(repo)
	dedup := newStubDedup()
	svc := NewScoreService(repo, dedup, discardLogger)

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(context.Background(), ports.SubmitScoreInput{
			UserID: user.ID, Game: "mathChallenge", Score: 20,
		}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if got := repo.byID[user.ID].GameProgress.MathChallenge.Played; got != 2 {
		t.Errorf("played = %d, want 2 (no dedup without a submission id)", got)
	}
	if len(dedup.seen) != 0 {
		t.Errorf("dedup keys marked without a submission id: %v", dedup.seen)
	}
}
