package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub to capture what the user would see.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddTopic(ctx context.Context) error
	RecallTopic(ctx context.Context) error
	EditTopic(ctx context.Context) error
	DeleteTopic(ctx context.Context) error
	ListTopics(ctx context.Context) error
	SearchSteps(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Topic commands require a
// logged-in session. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own user-facing messages. This keeps the loop resilient: no user
// action is fatal to the running process.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cybermem %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, recall, edit, delete, (l)ist, search, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add", "recall", "edit", "delete", "l", "list", "search":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			switch cmd {
			case "add":
				_ = a.AddTopic(ctx)
			case "recall":
				_ = a.RecallTopic(ctx)
			case "edit":
				_ = a.EditTopic(ctx)
			case "delete":
				_ = a.DeleteTopic(ctx)
			case "l", "list":
				_ = a.ListTopics(ctx)
			case "search":
				_ = a.SearchSteps(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
