package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/habitkeeper/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Quote(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Progress(ctx context.Context) error
	AdjustProgress(ctx context.Context, delta int) error
	CheckIn(ctx context.Context, habit string) error
	Habits(ctx context.Context) error
	Tasks(ctx context.Context) error
	Upcoming(ctx context.Context) error
	Stories(ctx context.Context) error
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) error
}

// memberOnly lists commands that need a logged-in session.
var memberOnly = map[string]bool{
	"dashboard": true, "home": true,
	"profile": true, "editprofile": true,
	"progress": true, "+": true, "-": true,
	"habit": true, "habits": true,
	"tasks": true, "upcoming": true, "stories": true,
	"export": true, "import": true,
	"logout": true,
}

// runREPL starts a simple read-eval-print loop for the habitkeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  help                     show available commands
//	  signup                   create an account
//	  login                    authenticate
//	  quote                    Tim's thought of the day
//	  exit | quit              leave the program
//
//	Logged in:
//	  help                     show available commands
//	  dashboard | home         render every panel
//	  profile                  show the profile
//	  editprofile              edit the profile
//	  progress, +, -           show or move the Wren & Martin counter
//	  habit <name>             check a habit in for today
//	  habits                   habit tracker
//	  quote                    Tim's thought of the day
//	  tasks, upcoming, stories static panels
//	  export [file]            print the store as JSON or write it to file
//	  import <file>            replace the store with an exported snapshot
//	  logout                   log out
//	  exit | quit              leave the program
//
// Errors returned by command handlers are turned into a single user message
// by errorMessage; the loop never stops on them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("hk %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		if memberOnly[cmd] && !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, profile, editprofile, progress, +, -, habit <name>, habits, quote, tasks, upcoming, stories, export [file], import <file>, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, quote, exit")
			}

		case "signup":
			err = a.SignUp(ctx)

		case "login":
			err = a.Login(ctx)

		case "quote":
			err = a.Quote(ctx)

		case "dashboard", "home":
			err = a.Dashboard(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "editprofile":
			err = a.EditProfile(ctx)

		case "progress":
			err = a.Progress(ctx)

		case "+":
			err = a.AdjustProgress(ctx, +1)

		case "-":
			err = a.AdjustProgress(ctx, -1)

		case "habit":
			if len(args) == 0 {
				printlnFn("Usage: habit <name>")
				continue
			}
			err = a.CheckIn(ctx, strings.Join(args, " "))

		case "habits":
			err = a.Habits(ctx)

		case "tasks":
			err = a.Tasks(ctx)

		case "upcoming":
			err = a.Upcoming(ctx)

		case "stories":
			err = a.Stories(ctx)

		case "export":
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			err = a.Export(ctx, path)

		case "import":
			if len(args) == 0 {
				printlnFn("Usage: import <file>")
				continue
			}
			err = a.Import(ctx, args[0])

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(errorMessage(err))
		}
		if readErr != nil {
			return
		}
	}
}

// errorMessage maps service errors to the single line shown to the user.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return "Enter email and password"
	case errors.Is(err, common.ErrorAlreadyExists):
		return "Account exists. Login or use another email."
	case errors.Is(err, common.ErrorInvalidCredentials):
		return "Invalid credentials"
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
