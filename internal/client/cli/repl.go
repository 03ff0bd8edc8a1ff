package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophwallet/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	Balance(ctx context.Context) error
	Find(ctx context.Context, args []string) error
	Transfer(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: balance, find [text], transfer [userId amount], whoami, profile, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// Prompts issued by the commands share reader, so no input is lost between
// them. The loop ends on EOF or "exit"/"quit".
//
//	Logged out: help, register, login, exit | quit
//	Logged in:  help, balance, find, transfer, whoami, profile, logout, exit | quit
//
// Errors returned by commands are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("wallet %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if cmd == "help" {
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		}

		run, ok := dispatch(a, cmd, args)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := run(ctx); err != nil {
			printlnFn("Error:", describe(err))
		}
	}
}

func dispatch(a execIface, cmd string, args []string) (func(context.Context) error, bool) {
	public := map[string]func(context.Context) error{
		"register": a.Register,
		"login":    a.Login,
	}
	private := map[string]func(context.Context) error{
		"logout":   a.Logout,
		"whoami":   a.Whoami,
		"profile":  a.Profile,
		"balance":  a.Balance,
		"b":        a.Balance,
		"find":     func(ctx context.Context) error { return a.Find(ctx, args) },
		"transfer": func(ctx context.Context) error { return a.Transfer(ctx, args) },
	}

	if f, ok := public[cmd]; ok {
		return f, true
	}
	f, ok := private[cmd]
	if !ok {
		return nil, false
	}
	if !a.isLoggedIn() {
		return func(context.Context) error { return client.ErrNotLoggedIn }, true
	}
	return f, true
}

func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrNotLoggedIn):
		return "please login first"
	case errors.Is(err, client.ErrAlreadyExists):
		return "this email is already registered"
	case errors.Is(err, client.ErrUnauthorized):
		return "invalid username or password"
	}
	return err.Error()
}
