package cli

import (
	"bufio"
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root checks the server once and then runs the REPL on scanner.
func (a *App) Root(ctx context.Context, scanner *bufio.Scanner) {
	fmt.Fprintln(a.out, "Welcome to userdb CLI (type 'help' for commands)")
	_ = a.Ping(ctx)
	runREPL(ctx, a, a.getStatus, scanner)
}
