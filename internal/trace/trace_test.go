package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if l.String() != s {
			t.Errorf("round trip %q -> %q", s, l.String())
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	tests := []struct {
		level Level
		kind  Kind
		scope Scope
		want  bool
	}{
		{LevelOff, KindError, ScopeDriver, false},
		{LevelError, KindSpanBegin, ScopeDriver, false},
		{LevelError, KindError, ScopePass, true},
		{LevelPhase, KindSpanBegin, ScopeFile, true},
		{LevelPhase, KindSpanBegin, ScopePass, false},
		{LevelDetail, KindSpanEnd, ScopePass, true},
		{LevelDebug, KindPoint, ScopePass, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.kind, tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s, %s) = %v, want %v", tt.level, tt.kind, tt.scope, got, tt.want)
		}
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("expected disabled tracer")
	}
	if s := Begin(tr, ScopeDriver, "x", 0); s.ID() != 0 || s.End("") != 0 {
		t.Error("expected inert span")
	}
}

func TestSpansNestThroughContext(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)

	ctx, file := Start(ctx, ScopeFile, "file:a.slof")
	_, lex := Start(ctx, ScopePass, "lex")
	lex.WithExtra("tokens", "3").End("")
	file.End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), buf.String())
	}
	var evs []jsonEvent
	for _, line := range lines {
		var ev jsonEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("bad json %q: %v", line, err)
		}
		evs = append(evs, ev)
	}
	if evs[1].Name != "lex" || evs[1].ParentID != evs[0].SpanID {
		t.Errorf("lex span should be a child of the file span: %+v", evs[1])
	}
	if evs[2].Extra["tokens"] != "3" {
		t.Errorf("expected extra on end event: %+v", evs[2])
	}
	if evs[3].Kind != "end" || evs[3].Detail != "ok" {
		t.Errorf("unexpected last event %+v", evs[3])
	}
	for i := 1; i < len(evs); i++ {
		if evs[i].Seq <= evs[i-1].Seq {
			t.Errorf("sequence numbers not increasing: %d then %d", evs[i-1].Seq, evs[i].Seq)
		}
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatText)
	ctx := WithTracer(context.Background(), tr)

	Begin(tr, ScopeDriver, "tokenize", 0).End("")
	Point(ctx, KindError, ScopePass, "lex", "unexpected character")

	out := buf.String()
	if strings.Contains(out, "tokenize") {
		t.Errorf("span leaked through error level: %q", out)
	}
	if !strings.Contains(out, "! lex (unexpected character)") {
		t.Errorf("missing error point: %q", out)
	}
}
