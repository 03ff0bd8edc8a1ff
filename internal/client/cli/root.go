package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if a.session != nil {
		s = a.session.Username + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, restores a stored session and runs the REPL until
// the user exits or stdin closes.
func (a *App) Root(ctx context.Context) {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to the wallet CLI (type 'help' for commands)")

	a.restoreSession(ctx)
	if a.isLoggedIn() {
		printlnFn("Logged in as", a.session.Username)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
