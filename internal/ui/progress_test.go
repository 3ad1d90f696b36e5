package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"slof/internal/driver"
)

func TestApplyEventCountsFinalStatesOnce(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("tokenize", []string{"a.slof", "b.slof"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.slof", Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "a.slof", Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "a.slof", Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.slof", Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "unknown.slof", Status: driver.StatusDone})

	if m.finished != 2 || m.failed != 1 {
		t.Errorf("expected 2 finished / 1 failed, got %d / %d", m.finished, m.failed)
	}
	view := m.View()
	if !strings.Contains(view, "(2/2, 1 failed)") {
		t.Errorf("unexpected header:\n%s", view)
	}
	if !strings.Contains(view, "a.slof") || !strings.Contains(view, "error") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestDoneMsgQuits(t *testing.T) {
	m := NewProgressModel("t", []string{"x.slof"}, nil)
	next, cmd := m.Update(doneMsg{})
	if !next.(*progressModel).done {
		t.Error("expected done")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("a/very/long/path.slof", 10); got != "a/very/..." {
		t.Errorf("got %q", got)
	}
	if got := truncate("日本語ファイル", 3); got != "日" {
		t.Errorf("got %q", got)
	}
}
