package observ

import (
	"strings"
	"testing"
	"time"
)

func TestReportMergesEqualNames(t *testing.T) {
	tm := NewTimer()
	tm.Add("lex", 2*time.Millisecond, "")
	tm.Add("load", time.Millisecond, "")
	tm.Add("lex", 3*time.Millisecond, "")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %+v", r.Phases)
	}
	if r.Phases[0].Name != "lex" || r.Phases[0].DurationMS != 5 {
		t.Errorf("unexpected lex phase %+v", r.Phases[0])
	}
	if r.TotalMS != 6 {
		t.Errorf("expected total 6ms, got %v", r.TotalMS)
	}
}

func TestBeginEnd(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("decode")
	tm.End(idx, "42 codepoints")
	tm.End(99, "ignored")

	s := tm.Summary()
	if !strings.Contains(s, "decode") || !strings.Contains(s, "// 42 codepoints") || !strings.Contains(s, "total") {
		t.Errorf("unexpected summary:\n%s", s)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Errorf("expected empty report, got %+v", r)
	}
}
