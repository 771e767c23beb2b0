package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Get(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// runREPL reads commands from scanner until EOF, "exit" or "quit".
//
// Commands:
//
//	help        show available commands
//	register    create an account
//	login       check credentials
//	list | l    list accounts
//	get <id>    show one account
//	ping        check the server
//	exit | quit leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("userdb %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: register, login, (l)ist, get <id>, ping, exit")

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "get":
			if len(args) == 0 {
				printlnFn("Usage: get <id>")
				continue
			}
			_ = a.Get(ctx, args[0])

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
