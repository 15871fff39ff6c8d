package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	old := printlnFn
	t.Cleanup(func() { printlnFn = old })

	out := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*out = append(*out, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	return out
}

func outputContains(out *[]string, substr string) bool {
	for _, line := range *out {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error          { s.calls = append(s.calls, name); return nil }
func (s *stubExec) isLoggedIn() bool                  { return s.loggedIn }
func (s *stubExec) Register(context.Context) error    { return s.record("register") }
func (s *stubExec) Login(context.Context) error       { return s.record("login") }
func (s *stubExec) Logout(context.Context) error      { return s.record("logout") }
func (s *stubExec) AddTopic(context.Context) error    { return s.record("add") }
func (s *stubExec) RecallTopic(context.Context) error { return s.record("recall") }
func (s *stubExec) EditTopic(context.Context) error   { return s.record("edit") }
func (s *stubExec) DeleteTopic(context.Context) error { return s.record("delete") }
func (s *stubExec) ListTopics(context.Context) error  { return s.record("list") }
func (s *stubExec) SearchSteps(context.Context) error { return s.record("search") }

func runScript(t *testing.T, a *stubExec, script string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), a, func() string { return "" }, scanner)
}

func TestRunREPL_DispatchesWhenLoggedIn(t *testing.T) {
	_ = captureOutput(t)
	a := &stubExec{loggedIn: true}

	runScript(t, a, "add\nrecall\nedit\ndelete\nlist\nl\nsearch\nlogout\nexit\n")

	assert.Equal(t, []string{"add", "recall", "edit", "delete", "list", "list", "search", "logout"}, a.calls)
}

func TestRunREPL_TopicCommandsRequireLogin(t *testing.T) {
	out := captureOutput(t)
	a := &stubExec{loggedIn: false}

	runScript(t, a, "add\nlist\nregister\nlogin\nexit\n")

	// Only the auth commands got through.
	assert.Equal(t, []string{"register", "login"}, a.calls)
	assert.True(t, outputContains(out, "Please log in first."))
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	out := captureOutput(t)
	a := &stubExec{}

	runScript(t, a, "frobnicate\nexit\n")

	assert.True(t, outputContains(out, "Unknown command:"))
	assert.True(t, outputContains(out, "Bye!"))
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)
	runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	assert.True(t, outputContains(out, "register, login, exit"))

	out = captureOutput(t)
	runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.True(t, outputContains(out, "add, recall, edit, delete"))
}

func TestRunREPL_BlankLinesSkipped(t *testing.T) {
	_ = captureOutput(t)
	a := &stubExec{loggedIn: true}
	runScript(t, a, "\n   \nlist\nexit\n")
	assert.Equal(t, []string{"list"}, a.calls)
}
