package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestSlack_OK(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		got = payload["text"]
		w.WriteHeader(200)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	if s == nil {
		t.Fatal("expected slack client")
	}
	err := s.Send(context.Background(), "isAWSback", "AWS status changed: Yes (was No).")
	if err != nil {
		t.Fatalf("send err: %v", err)
	}
	if got == "" || got[0] != '*' { // starts with "*isAWSback*"
		t.Fatalf("payload not as expected: %q", got)
	}
}

func TestSlack_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	if err := s.Send(context.Background(), "X", "Y"); err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}

func TestNewSlack_EmptyWebhookDisabled(t *testing.T) {
	if s := NewSlack(""); s != nil {
		t.Fatalf("want nil for empty webhook")
	}
}

type failing struct{}

func (failing) Send(ctx context.Context, title, text string) error {
	return errors.New("channel broken")
}

type counting struct{ n int }

func (c *counting) Send(ctx context.Context, title, text string) error {
	c.n++
	return nil
}

func TestMulti_FailingChannelDoesNotStopOthers(t *testing.T) {
	c := &counting{}
	m := Multi{failing{}, nil, c, failing{}}
	err := m.Send(context.Background(), "t", "x")
	if err == nil {
		t.Fatalf("want combined error from failing channels")
	}
	if c.n != 1 {
		t.Fatalf("healthy channel must still be called, got %d", c.n)
	}
}

func TestLog_Send(t *testing.T) {
	l := NewLog(zap.NewNop())
	if err := l.Send(context.Background(), "t", "x"); err != nil {
		t.Fatalf("log channel must not fail: %v", err)
	}
}
