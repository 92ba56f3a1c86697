package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// commandSet defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type commandSet interface {
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the vault.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on c. Unknown commands are reported back to the user. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	add            — store a new credential
//	l | list       — show stored credentials (with sort/filter options)
//	edit           — modify an existing credential
//	delete         — remove a credential
//	help           — show available commands
//	exit | quit    — leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, c commandSet, reader *bufio.Reader, out io.Writer) {
	fmt.Fprintln(out, dimStyle.Render("Type 'help' for commands."))

	for {
		fmt.Fprint(out, "passvault> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			fmt.Fprintln(out, "Available commands: add, (l)ist, edit, delete, exit")

		case "add":
			_ = c.Add(ctx)

		case "l", "list":
			_ = c.List(ctx)

		case "edit":
			_ = c.Edit(ctx)

		case "delete":
			_ = c.Delete(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", parts[0])
		}
	}
}
