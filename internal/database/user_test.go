package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/momentum/internal/models"
	"github.com/akyairhashvil/momentum/internal/util"
)

func TestCreateUserAndLookup(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	u, err := db.CreateUser(ctx, NewUser{Email: " Ada@Example.com ", PasswordHash: "h", FirstName: util.Ptr("Ada")})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if u.Email != "ada@example.com" || len(u.ID) != 36 {
		t.Fatalf("unexpected user %+v", u)
	}
	if u.FirstName == nil || *u.FirstName != "Ada" || u.LastName != nil {
		t.Fatalf("unexpected names %v %v", u.FirstName, u.LastName)
	}

	byEmail, err := db.GetUserByEmail(ctx, "ADA@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.ID != u.ID || byEmail.PasswordHash != "h" {
		t.Fatalf("lookup mismatch %+v", byEmail)
	}

	if _, err := db.CreateUser(ctx, NewUser{Email: "ada@example.com", PasswordHash: "h"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if _, err := db.GetUser(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	userID := createTestUser(t, ctx, db, "session@example.com")

	live := util.HashToken("live")
	stale := util.HashToken("stale")
	if _, err := db.CreateSession(ctx, live, userID, testEpoch.Add(time.Hour)); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := db.CreateSession(ctx, stale, userID, testEpoch.Add(-time.Hour)); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	u, err := db.GetSessionUser(ctx, live)
	if err != nil {
		t.Fatalf("GetSessionUser failed: %v", err)
	}
	if u.ID != userID {
		t.Fatalf("session resolved to %q, want %q", u.ID, userID)
	}
	if _, err := db.GetSessionUser(ctx, stale); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session to be ErrNotFound, got %v", err)
	}

	n, err := db.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 purged session, got %d", n)
	}

	if err := db.DeleteSession(ctx, live); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := db.GetSessionUser(ctx, live); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after logout, got %v", err)
	}
	if err := db.DeleteSession(ctx, live); err != nil {
		t.Fatalf("second DeleteSession should be a no-op, got %v", err)
	}
}

func TestConversations(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	userID := createTestUser(t, ctx, db, "chat@example.com")
	other := createTestUser(t, ctx, db, "other@example.com")

	c, err := db.CreateConversation(ctx, userID, "  Planning ")
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	if c.Title != "Planning" {
		t.Fatalf("Title = %q", c.Title)
	}
	if _, err := db.AddMessage(ctx, userID, c.ID, models.RoleUser, "hi"); err != nil {
		t.Fatalf("AddMessage failed: %v", err)
	}
	if _, err := db.AddMessage(ctx, userID, c.ID, models.RoleAssistant, "hello"); err != nil {
		t.Fatalf("AddMessage failed: %v", err)
	}
	if _, err := db.AddMessage(ctx, other, c.ID, models.RoleUser, "sneaky"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound posting to foreign conversation, got %v", err)
	}

	full, err := db.GetConversation(ctx, userID, c.ID)
	if err != nil {
		t.Fatalf("GetConversation failed: %v", err)
	}
	if len(full.Messages) != 2 || full.Messages[0].Role != models.RoleUser || full.Messages[1].Content != "hello" {
		t.Fatalf("unexpected messages %+v", full.Messages)
	}

	list, err := db.ListConversations(ctx, other)
	if err != nil {
		t.Fatalf("ListConversations failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no conversations for other user")
	}

	if err := db.DeleteConversation(ctx, other, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting another user's conversation, got %v", err)
	}
	if full, err := db.GetConversation(ctx, userID, c.ID); err != nil || len(full.Messages) != 2 {
		t.Fatalf("foreign delete touched messages: %v %+v", err, full)
	}

	if err := db.DeleteConversation(ctx, userID, c.ID); err != nil {
		t.Fatalf("DeleteConversation failed: %v", err)
	}
	if _, err := db.GetConversation(ctx, userID, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	var n int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM messages WHERE conversation_id = ?", c.ID).Scan(&n); err != nil {
		t.Fatalf("count messages failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected messages to cascade, got %d", n)
	}
}
