package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printfFn are test seams for user-facing output.
var (
	printlnFn = func(a ...any) { fmt.Println(a...) }
	printfFn  = func(format string, a ...any) { fmt.Printf(format, a...) }
)

// execIface is the minimal command surface the shell needs. The real App
// satisfies it; shell tests use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	EnsureFresh(ctx context.Context)

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Tags(ctx context.Context, args []string) error
	Pick(ctx context.Context, args []string) error
	Drop(ctx context.Context, args []string) error
	ClearTags(ctx context.Context) error
	Search(ctx context.Context) error

	Show(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Rate(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error

	Saved(ctx context.Context) error
	Account(ctx context.Context) error
	Add(ctx context.Context) error
}

// runREPL is the interactive shell: read a line, refresh the session if it
// has gone stale (the user just came back to the prompt), dispatch.
//
// Command handlers print their own errors; the loop ignores their return
// values and stays up until EOF or exit/quit.
//
// Commands when logged out:
//
//	help, tags [query], pick <tag,...>, drop <tag,...>, cleartags, search,
//	show <n|id>, login, register, exit
//
// Logged in additionally:
//
//	save <n|id>, rate <n|id> <1-5>, comment <n|id>, saved, account, add,
//	whoami, logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printfFn("cook (%s)> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: tags, pick, drop, cleartags, search, show, save, rate, comment, saved, account, add, whoami, logout, exit")
			} else {
				printlnFn("Available commands: tags, pick, drop, cleartags, search, show, login, register, exit")
			}
			continue
		}

		a.EnsureFresh(ctx)

		switch cmd {
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)

		case "tags":
			_ = a.Tags(ctx, args)
		case "pick":
			_ = a.Pick(ctx, args)
		case "drop":
			_ = a.Drop(ctx, args)
		case "cleartags":
			_ = a.ClearTags(ctx)
		case "search", "find":
			_ = a.Search(ctx)

		case "show":
			_ = a.Show(ctx, args)
		case "save":
			_ = a.Save(ctx, args)
		case "rate":
			_ = a.Rate(ctx, args)
		case "comment":
			_ = a.Comment(ctx, args)

		case "saved":
			_ = a.Saved(ctx)
		case "account":
			_ = a.Account(ctx)
		case "add":
			_ = a.Add(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
