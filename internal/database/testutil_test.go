package database

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/momentum/internal/testutil"
)

var testEpoch = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

// tickingClock returns a clock that advances one second per call so rows
// created in sequence get distinct timestamps.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func setupTestDB(t *testing.T, ctx context.Context, opts ...Option) *Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	opts = append([]Option{WithClock(tickingClock(testEpoch))}, opts...)
	db, err := Open(ctx, "sqlite://"+dbPath, opts...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func createTestUser(t *testing.T, ctx context.Context, db *Database, email string) string {
	t.Helper()
	u, err := db.CreateUser(ctx, NewUser{Email: email, PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return u.ID
}

type TestDataBuilder struct {
	t         *testing.T
	ctx       context.Context
	db        *Database
	userID    string
	sprintIDs []int64
	goalIDs   []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithUser(email string) *TestDataBuilder {
	b.t.Helper()
	b.userID = createTestUser(b.t, b.ctx, b.db, email)
	return b
}

func (b *TestDataBuilder) WithSprints(count int) *TestDataBuilder {
	b.t.Helper()
	if b.userID == "" {
		b.WithUser("builder@example.com")
	}
	for i := 0; i < count; i++ {
		req := testutil.NewSprint(testEpoch.AddDate(0, 0, 14*i)).
			WithTitle(fmt.Sprintf("Sprint %d", i+1)).
			Build()
		s, err := b.db.CreateSprint(b.ctx, b.userID, req)
		if err != nil {
			b.t.Fatalf("CreateSprint failed: %v", err)
		}
		b.sprintIDs = append(b.sprintIDs, s.ID)
	}
	return b
}

func (b *TestDataBuilder) WithGoals(perSprint int) *TestDataBuilder {
	b.t.Helper()
	if len(b.sprintIDs) == 0 {
		b.WithSprints(1)
	}
	for sprintIdx, sprintID := range b.sprintIDs {
		for i := 0; i < perSprint; i++ {
			req := testutil.NewGoal().
				WithTitle(fmt.Sprintf("Goal %d-%d", sprintIdx+1, i+1)).
				InSprint(sprintID).
				Build()
			g, err := b.db.CreateGoal(b.ctx, b.userID, req)
			if err != nil {
				b.t.Fatalf("CreateGoal failed: %v", err)
			}
			b.goalIDs = append(b.goalIDs, g.ID)
		}
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) UserID() string { return b.userID }

func (b *TestDataBuilder) SprintIDs() []int64 { return b.sprintIDs }

func (b *TestDataBuilder) GoalIDs() []int64 { return b.goalIDs }
