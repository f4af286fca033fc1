package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Verify(ctx context.Context) error
	Ping(ctx context.Context) error
	Create(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Get(ctx context.Context, id string) error
	Meta(ctx context.Context, id string) error
	Find(ctx context.Context, key string) error
	Summary(ctx context.Context, ids []string) error
	Update(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

const (
	helpLoggedOut = "Available commands: login, ping, exit"
	helpLoggedIn  = "Available commands: whoami, ping, create, (l)ist [page] [limit], get <id>, meta <id>, " +
		"find <username|email>, summary <id>..., update <id>, remove <id>, restore <id>, logout, exit"
)

// runREPL reads commands from scanner and dispatches them to a until EOF or
// "exit". Handler errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("users %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami", "verify":
			err = a.Verify(ctx)
		case "ping":
			err = a.Ping(ctx)
		case "create":
			err = a.Create(ctx)
		case "l", "list":
			err = a.List(ctx, args)
		case "get", "meta", "find", "update", "remove", "restore":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <%s>", cmd, argName(cmd)))
				continue
			}
			err = dispatchOne(ctx, a, cmd, args[0])
		case "summary":
			if len(args) == 0 {
				printlnFn("Usage: summary <id> [id...]")
				continue
			}
			err = a.Summary(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatchOne(ctx context.Context, a execIface, cmd, arg string) error {
	switch cmd {
	case "get":
		return a.Get(ctx, arg)
	case "meta":
		return a.Meta(ctx, arg)
	case "find":
		return a.Find(ctx, arg)
	case "update":
		return a.Update(ctx, arg)
	case "remove":
		return a.Remove(ctx, arg)
	default:
		return a.Restore(ctx, arg)
	}
}

func argName(cmd string) string {
	if cmd == "find" {
		return "username|email"
	}
	return "id"
}
