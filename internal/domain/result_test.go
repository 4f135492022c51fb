package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestResult_JSONRoundTrip(t *testing.T) {
	want := Result{
		Down:      Bool(false),
		Source:    "https://r.jina.ai/http://health.aws.amazon.com/health/status",
		Timestamp: time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC),
		Raw:       "All systems operating normally.",
	}
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Result
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !SameVerdict(got.Down, want.Down) || got.Source != want.Source ||
		got.Raw != want.Raw || !got.Timestamp.Equal(want.Timestamp) {
		t.Fatalf("mismatch after round-trip:\nwant=%+v\ngot =%+v", want, got)
	}
}

func TestResult_UnknownSerializesAsNull(t *testing.T) {
	r := Result{Down: nil, Source: SourceError, Error: "all endpoints failed"}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"down":null`) {
		t.Fatalf("want down:null in %s", b)
	}
	if strings.Contains(string(b), `"raw"`) {
		t.Fatalf("raw must be omitted on failure: %s", b)
	}
}

func TestWord(t *testing.T) {
	if w := Word(Bool(true)); w != "Yes" {
		t.Fatalf("want Yes, got %s", w)
	}
	if w := Word(Bool(false)); w != "No" {
		t.Fatalf("want No, got %s", w)
	}
	if w := Word(nil); w != "Unknown" {
		t.Fatalf("want Unknown, got %s", w)
	}
}

func TestSameVerdict(t *testing.T) {
	cases := []struct {
		a, b *bool
		want bool
	}{
		{nil, nil, true},
		{nil, Bool(false), false},
		{Bool(true), nil, false},
		{Bool(true), Bool(true), true},
		{Bool(true), Bool(false), false},
		{Bool(false), Bool(false), true},
	}
	for i, c := range cases {
		if got := SameVerdict(c.a, c.b); got != c.want {
			t.Fatalf("case %d: want %v, got %v", i, c.want, got)
		}
	}
}

func TestSourceLabel(t *testing.T) {
	mirror := Result{Source: "https://api.allorigins.win/raw?url=x"}
	if mirror.SourceLabel() != "Mirror" {
		t.Fatalf("want Mirror, got %s", mirror.SourceLabel())
	}
	errRes := Result{Source: SourceError}
	if errRes.SourceLabel() != "error" {
		t.Fatalf("want error, got %s", errRes.SourceLabel())
	}
	direct := Result{Source: "https://health.aws.amazon.com/health/status"}
	if direct.SourceLabel() != "Direct" {
		t.Fatalf("want Direct, got %s", direct.SourceLabel())
	}
}

func TestTruncateRaw(t *testing.T) {
	long := strings.Repeat("a", RawMaxLen+100)
	if got := TruncateRaw(long); len(got) != RawMaxLen {
		t.Fatalf("want %d bytes, got %d", RawMaxLen, len(got))
	}
	if got := TruncateRaw("short"); got != "short" {
		t.Fatalf("short text must pass through, got %q", got)
	}
}
