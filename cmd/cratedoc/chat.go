package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rdocs/cratedoc"
)

// consoleChatID is the single conversation a terminal session maps to.
const consoleChatID int64 = 1

// Run executes the chat command: a line-oriented loop that drives the
// same lookup and drill-down flows a messaging frontend would.
func (c *ChatCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Type a symbol path (serde::Deserialize), 'crate <name>',")
	fmt.Fprintln(deps.Stdout, "'open <message> <section>' to drill down, or 'quit'.")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		var err error
		switch fields := strings.Fields(line); fields[0] {
		case "crate":
			if len(fields) != 2 {
				fmt.Fprintln(deps.Stderr, "usage: crate <name>")
				continue
			}
			err = deps.Bot.Crate(deps.Ctx, consoleChatID, fields[1])
		case "open":
			if len(fields) != 3 {
				fmt.Fprintln(deps.Stderr, "usage: open <message> <section>")
				continue
			}
			messageID, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				fmt.Fprintln(deps.Stderr, "usage: open <message> <section>")
				continue
			}
			err = deps.Bot.Follow(deps.Ctx, consoleChatID, messageID, fields[2])
		default:
			err = deps.Bot.Lookup(deps.Ctx, consoleChatID, line)
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cratedoc.ErrorMessage(err))
		}
	}
	return scanner.Err()
}

// consoleMessenger renders messages to the terminal. Each sent message
// gets a sequential id the user can reference with 'open'.
type consoleMessenger struct {
	mu     sync.Mutex
	out    io.Writer
	nextID int
}

var _ cratedoc.Messenger = (*consoleMessenger)(nil)

func newConsoleMessenger(out io.Writer) *consoleMessenger {
	return &consoleMessenger{out: out, nextID: 1}
}

func (m *consoleMessenger) Send(ctx context.Context, chatID int64, msg *cratedoc.Message) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.print(id, msg)
	return id, nil
}

func (m *consoleMessenger) Edit(ctx context.Context, chatID int64, messageID int, msg *cratedoc.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.print(messageID, msg)
	return nil
}

func (m *consoleMessenger) print(id int, msg *cratedoc.Message) {
	fmt.Fprintf(m.out, "\n[message %d]\n%s\n", id, msg.Text)
	for _, row := range msg.Buttons {
		for _, b := range row {
			if b.URL != "" {
				fmt.Fprintf(m.out, "  %s: %s\n", b.Label, b.URL)
			} else {
				fmt.Fprintf(m.out, "  [%s] %s\n", b.Data, b.Label)
			}
		}
	}
	fmt.Fprintln(m.out)
}
