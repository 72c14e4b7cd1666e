package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samdwyer/magevsorc/internal/combat"
	"github.com/samdwyer/magevsorc/internal/game"
)

const (
	bannerRule = "=================================================="
	statusRule = "------------------------------"
	clearCode  = "\033[H\033[2J"
)

// Console is a line-oriented front end over a reader and a writer.
// It is both the game's Renderer and its InputProvider.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
	upper cases.Caser

	startReader sync.Once
	lines       chan lineResult

	moveCount int
}

// lineResult is one read from the input, delivered by the reader goroutine.
type lineResult struct {
	line string
	err  error
}

// ConsoleOption customizes a Console.
type ConsoleOption func(*Console)

// WithClearScreen clears the terminal before the title. Only useful on a real terminal.
func WithClearScreen(clear bool) ConsoleOption {
	return func(c *Console) { c.clear = clear }
}

// NewConsole creates a console front end.
func NewConsole(in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		upper: cases.Upper(language.English),
		lines: make(chan lineResult),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ game.Renderer      = (*Console)(nil)
	_ game.InputProvider = (*Console)(nil)
)

// Intro prints the title banner.
func (c *Console) Intro() {
	if c.clear {
		fmt.Fprint(c.out, clearCode)
	}
	fmt.Fprintln(c.out, bannerRule)
	fmt.Fprintf(c.out, "       🧙  %s  👹\n", c.upper.String("Mage vs. Orc King"))
	fmt.Fprintln(c.out, bannerRule)
	fmt.Fprintln(c.out, "A turn-based battle to the death!")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "The ancient Mage faces the dreaded Orc King in mortal combat!")
	fmt.Fprintln(c.out, "Choose your moves wisely to emerge victorious!")
	fmt.Fprintln(c.out)
}

// Render prints what changed in the battle.
func (c *Console) Render(v game.View) {
	switch v.Phase {
	case game.PhaseAwaitingPlayerMove:
		c.printStatus(v)
		c.printMenu(v)
	case game.PhaseCheckOpponentAlive:
		if v.Last != nil {
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, v.Last.Message)
		}
	case game.PhaseCheckPlayerAlive:
		if v.Last != nil {
			fmt.Fprintln(c.out, v.Last.Message)
			fmt.Fprintln(c.out)
		}
	case game.PhaseGameOver:
		c.printGameOver(v)
	}
}

// Reject explains why a selection was refused.
func (c *Console) Reject(err error) {
	if errors.Is(err, combat.ErrOutOfRange) {
		fmt.Fprintf(c.out, "Invalid choice! Please enter a number between 1 and %d.\n", c.moveCount)
		return
	}
	fmt.Fprintln(c.out, "Invalid input! Please enter a number.")
}

// SelectMove reads a 1-based move number and returns the 0-based slot.
// "q", "quit" or end of input mean the player wants to leave.
func (c *Console) SelectMove(ctx context.Context, actor *combat.Combatant) (int, error) {
	c.moveCount = actor.MoveCount()
	fmt.Fprintf(c.out, "Enter move number (1-%d): ", c.moveCount)

	line, err := c.readLine(ctx)
	if err != nil {
		return 0, err
	}
	if isQuit(line) {
		return 0, game.ErrQuit
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", combat.ErrInvalidMoveSelection, line)
	}
	return n - 1, nil
}

// Acknowledge waits for Enter.
func (c *Console) Acknowledge(ctx context.Context, prompt string) error {
	fmt.Fprint(c.out, prompt)
	line, err := c.readLine(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	if isQuit(line) {
		return game.ErrQuit
	}
	return nil
}

// Confirm asks a yes/no question; anything starting with "y" is yes.
func (c *Console) Confirm(ctx context.Context, prompt string) (bool, error) {
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, prompt+": ")
	line, err := c.readLine(ctx)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}

// readLine waits for the next input line. A cancelled context counts as a quit
// so Ctrl-C does not have to wait for Enter.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", c.interrupted()
	}
	c.startReader.Do(func() { go c.readLines() })

	select {
	case <-ctx.Done():
		return "", c.interrupted()
	case r, ok := <-c.lines:
		if !ok {
			fmt.Fprintln(c.out)
			return "", game.ErrQuit
		}
		if r.err != nil {
			return "", r.err
		}
		return r.line, nil
	}
}

// readLines feeds c.lines until the input ends. Reads happen one line ahead,
// so a read abandoned on cancellation does not lose the line.
func (c *Console) readLines() {
	defer close(c.lines)
	for {
		line, err := c.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.lines <- lineResult{err: fmt.Errorf("failed to read input: %w", err)}
				return
			}
			if line == "" {
				return
			}
		}
		c.lines <- lineResult{line: strings.TrimSpace(line)}
		if err != nil {
			return
		}
	}
}

func (c *Console) interrupted() error {
	fmt.Fprintln(c.out)
	return game.ErrQuit
}

func (c *Console) printStatus(v game.View) {
	fmt.Fprintln(c.out, "BATTLE STATUS:")
	fmt.Fprintln(c.out, statusRule)
	fmt.Fprintln(c.out, StatusLine(v.Player.Combatant))
	fmt.Fprintln(c.out, StatusLine(v.Opponent.Combatant))
	fmt.Fprintln(c.out)
}

func (c *Console) printMenu(v game.View) {
	fmt.Fprintf(c.out, "Turn %d - Choose your move:\n", v.Turn)
	fmt.Fprintln(c.out, statusRule)
	for i, m := range v.Player.Moves() {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, m)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) printGameOver(v game.View) {
	if v.Outcome == game.OutcomeQuit {
		fmt.Fprintln(c.out, "Thanks for playing Mage vs. Orc King!")
		return
	}

	c.printStatus(v)
	fmt.Fprintln(c.out, bannerRule)
	title := c.upper.String(v.Outcome.String())
	switch v.Outcome {
	case game.OutcomePlayerWins:
		fmt.Fprintf(c.out, "🎉 %s! 🎉\n", title)
		fmt.Fprintf(c.out, "The %s has defeated the %s!\n", v.Player.Name, v.Opponent.Name)
		fmt.Fprintln(c.out, "Your magical prowess has saved the realm!")
	case game.OutcomeOpponentWins:
		fmt.Fprintf(c.out, "💀 %s! 💀\n", title)
		fmt.Fprintf(c.out, "The %s has overwhelmed the %s!\n", v.Opponent.Name, v.Player.Name)
		fmt.Fprintln(c.out, "The realm falls to darkness...")
	}
	fmt.Fprintln(c.out, bannerRule)
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
