package nclu

import (
	"strings"
	"testing"

	"github.com/joelmoss/nclu/internal/logging"
)

// fakeNet mimics the net output the client screen-scrapes: a pending
// buffer that commit moves into last-commit and abort clears.
//
// If the real net output drifts from what is modelled here, the client's
// screen-scraping breaks against that net version.
type fakeNet struct {
	pending    string
	lastCommit string
	history    []string
	mocks      map[string]Result
}

func newFakeNet() *fakeNet {
	return &fakeNet{mocks: map[string]Result{}}
}

func (f *fakeNet) mock(command string, res Result) {
	f.mocks[command] = res
}

func (f *fakeNet) Run(command string) Result {
	f.history = append(f.history, command)
	switch {
	case command == "pending":
		return Result{Stdout: f.pending}
	case command == "abort":
		f.pending = ""
		return Result{}
	case strings.HasPrefix(command, "commit"):
		if f.pending == "" {
			return Result{Stdout: "commit ignored...there were no pending changes"}
		}
		f.lastCommit = f.pending
		f.pending = ""
		return Result{}
	case command == "show commit last":
		return Result{Stdout: f.lastCommit}
	}
	// Re-adding committed config leaves the buffer untouched.
	if !strings.Contains(f.lastCommit, command) {
		f.pending += command
	}
	if res, ok := f.mocks[command]; ok {
		return res
	}
	return Result{}
}

func newTestClient(t *testing.T) (*Client, *fakeNet) {
	t.Helper()
	net := newFakeNet()
	return &Client{Executor: net, Logger: logging.NewNop()}, net
}

func assertHistory(t *testing.T, got []string, expected ...string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("expected commands %q, got %q", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %q at position %d, got %q (history %q)", expected[i], i, got[i], got)
		}
	}
}
