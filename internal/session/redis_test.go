package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_AppendAndHistory(t *testing.T) {
	s, _ := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	err := s.Append(ctx, "sess-1",
		Message{Role: RoleUser, Content: "What was the revenue?", CreatedAt: time.Now()},
		Message{Role: RoleAssistant, Content: "Based on the financial document, the revenue is $500.", CreatedAt: time.Now()},
	)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}

	msgs, err := s.History(ctx, "sess-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != RoleUser {
		t.Errorf("expected first message from user, got %s", msgs[0].Role)
	}
	if msgs[1].Content != "Based on the financial document, the revenue is $500." {
		t.Errorf("unexpected assistant content: %q", msgs[1].Content)
	}
}

func TestRedisStore_HistoryUnknownSession(t *testing.T) {
	s, _ := setupRedisStore(t, time.Hour)
	msgs, err := s.History(context.Background(), "nope")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected empty history, got %d", len(msgs))
	}
}

func TestRedisStore_OrderPreservedAcrossAppends(t *testing.T) {
	s, _ := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	for i, content := range []string{"first", "second", "third"} {
		if err := s.Append(ctx, "sess-1", Message{Role: RoleUser, Content: content}); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	msgs, err := s.History(ctx, "sess-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if msgs[i].Content != w {
			t.Errorf("expected %q at %d, got %q", w, i, msgs[i].Content)
		}
	}
}

func TestRedisStore_TTLSetAndRefreshed(t *testing.T) {
	s, mr := setupRedisStore(t, time.Minute)
	ctx := context.Background()

	if err := s.Append(ctx, "sess-1", Message{Role: RoleUser, Content: "hi"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if got := mr.TTL(keyPrefix + "sess-1"); got != time.Minute {
		t.Errorf("expected ttl %v, got %v", time.Minute, got)
	}

	mr.FastForward(30 * time.Second)
	if err := s.Append(ctx, "sess-1", Message{Role: RoleUser, Content: "again"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if got := mr.TTL(keyPrefix + "sess-1"); got != time.Minute {
		t.Errorf("expected append to refresh ttl to %v, got %v", time.Minute, got)
	}
}

func TestRedisStore_ExpiresAsAWhole(t *testing.T) {
	s, mr := setupRedisStore(t, time.Minute)
	ctx := context.Background()

	if err := s.Append(ctx, "sess-1", Message{Role: RoleUser, Content: "hi"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	msgs, err := s.History(ctx, "sess-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected expired session to be empty, got %d messages", len(msgs))
	}
}

func TestRedisStore_Clear(t *testing.T) {
	s, mr := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	if err := s.Append(ctx, "sess-1", Message{Role: RoleUser, Content: "hi"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := s.Clear(ctx, "sess-1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if mr.Exists(keyPrefix + "sess-1") {
		t.Error("expected session key removed")
	}

	// Clearing an unknown session is not an error.
	if err := s.Clear(ctx, "nope"); err != nil {
		t.Errorf("unexpected error clearing unknown session: %v", err)
	}
}

func TestRedisStore_SessionsAreIndependent(t *testing.T) {
	s, _ := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	_ = s.Append(ctx, "a", Message{Role: RoleUser, Content: "for a"})
	_ = s.Append(ctx, "b", Message{Role: RoleUser, Content: "for b"})

	if err := s.Clear(ctx, "a"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	msgs, err := s.History(ctx, "b")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Content != "for b" {
		t.Errorf("expected session b untouched, got %+v", msgs)
	}
}

func TestRedisStore_CorruptEntryFailsDecode(t *testing.T) {
	s, mr := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	if _, err := mr.Push(keyPrefix+"bad", "not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := s.History(ctx, "bad"); err == nil {
		t.Error("expected decode error for corrupt entry")
	}
}

func TestRedisStore_ServerDownReturnsError(t *testing.T) {
	s, mr := setupRedisStore(t, time.Hour)
	mr.Close()

	if err := s.Append(context.Background(), "sess-1", Message{Role: RoleUser, Content: "hi"}); err == nil {
		t.Error("expected error when redis is unavailable")
	}
	if _, err := s.History(context.Background(), "sess-1"); err == nil {
		t.Error("expected error when redis is unavailable")
	}
}
