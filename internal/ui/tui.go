package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/magevsorc/internal/combat"
	"github.com/samdwyer/magevsorc/internal/entity"
	"github.com/samdwyer/magevsorc/internal/game"
	"github.com/samdwyer/magevsorc/internal/gamedata"
)

const messageLogSize = 6

// keyAction is what a key press means to the full screen UI.
type keyAction int

const (
	keyNone keyAction = iota
	keyDigit
	keyQuit
	keyYes
	keyNo
	keyContinue
)

// actionFor maps a key press to an action. For keyDigit the second value is the 0-based slot.
func actionFor(key tcell.Key, r rune) (keyAction, int) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyQuit, 0
	case tcell.KeyEnter:
		return keyContinue, 0
	case tcell.KeyRune:
		switch {
		case r >= '1' && r <= '9':
			return keyDigit, int(r - '1')
		case r == 'q' || r == 'Q':
			return keyQuit, 0
		case r == 'y' || r == 'Y':
			return keyYes, 0
		case r == 'n' || r == 'N':
			return keyNo, 0
		case r == ' ':
			return keyContinue, 0
		}
	}
	return keyNone, 0
}

// segment is a run of text in one style.
type segment struct {
	text  string
	style tcell.Style
}

// row is one screen line.
type row []segment

func (r row) String() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteString(s.text)
	}
	return b.String()
}

func plain(text string) row {
	return row{{text: text, style: tcell.StyleDefault}}
}

// TUI is the tcell full screen front end. It is both the game's Renderer and its InputProvider.
type TUI struct {
	screen *Screen

	view     *game.View
	messages []string
	notice   string
	prompt   string
}

// NewTUI creates a full screen front end drawing on screen.
func NewTUI(screen *Screen) *TUI {
	return &TUI{screen: screen}
}

var (
	_ game.Renderer      = (*TUI)(nil)
	_ game.InputProvider = (*TUI)(nil)
)

// Intro resets the message log for a fresh session.
func (t *TUI) Intro() {
	t.messages = []string{
		"The ancient Mage faces the dreaded Orc King in mortal combat!",
		"Choose your moves wisely to emerge victorious!",
	}
	t.draw()
}

// Render redraws the screen for the new phase.
func (t *TUI) Render(v game.View) {
	if t.view == nil || t.view.BattleID != v.BattleID {
		t.messages = nil
	}
	t.view = &v
	switch v.Phase {
	case game.PhaseCheckOpponentAlive, game.PhaseCheckPlayerAlive:
		if v.Last != nil {
			t.log(v.Last.Message)
		}
	case game.PhaseGameOver:
		t.log(gameOverMessage(v))
	}
	t.draw()
}

// Reject shows why a key press was not accepted.
func (t *TUI) Reject(err error) {
	if errors.Is(err, combat.ErrOutOfRange) && t.view != nil {
		t.notice = fmt.Sprintf("Invalid choice! Pick a move between 1 and %d.", t.view.Player.MoveCount())
	} else {
		t.notice = "Invalid input!"
	}
	t.draw()
}

// SelectMove waits for a digit key.
func (t *TUI) SelectMove(ctx context.Context, actor *combat.Combatant) (int, error) {
	t.prompt = fmt.Sprintf("Press 1-%d to choose a move, q to quit", actor.MoveCount())
	defer t.clearPrompt()
	t.draw()

	for {
		action, slot, err := t.nextAction(ctx)
		if err != nil {
			return 0, err
		}
		switch action {
		case keyDigit:
			return slot, nil
		case keyQuit:
			return 0, game.ErrQuit
		}
	}
}

// Acknowledge waits for Enter or space.
func (t *TUI) Acknowledge(ctx context.Context, prompt string) error {
	t.prompt = prompt
	defer t.clearPrompt()
	t.draw()

	for {
		action, _, err := t.nextAction(ctx)
		if err != nil {
			return err
		}
		switch action {
		case keyContinue:
			return nil
		case keyQuit:
			return game.ErrQuit
		}
	}
}

// Confirm waits for y or n.
func (t *TUI) Confirm(ctx context.Context, prompt string) (bool, error) {
	t.prompt = prompt
	defer t.clearPrompt()
	t.draw()

	for {
		action, _, err := t.nextAction(ctx)
		if err != nil {
			return false, err
		}
		switch action {
		case keyYes:
			return true, nil
		case keyNo:
			return false, nil
		case keyQuit:
			return false, game.ErrQuit
		}
	}
}

// nextAction blocks for the next key press, redrawing on resize.
func (t *TUI) nextAction(ctx context.Context) (keyAction, int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return keyNone, 0, err
		}
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// The screen was finalized underneath us.
			return keyNone, 0, game.ErrQuit
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		case *tcell.EventKey:
			action, slot := actionFor(ev.Key(), ev.Rune())
			if action != keyNone {
				t.notice = ""
				return action, slot, nil
			}
		}
	}
}

func (t *TUI) clearPrompt() { t.prompt = "" }

func (t *TUI) log(msg string) {
	t.messages = append(t.messages, msg)
	if len(t.messages) > messageLogSize {
		t.messages = t.messages[len(t.messages)-messageLogSize:]
	}
}

func (t *TUI) draw() {
	if t.screen == nil {
		return
	}
	t.screen.Clear()
	for y, r := range t.layout() {
		x := 1
		for _, s := range r {
			x = t.screen.DrawText(x, y, s.text, s.style)
		}
	}
	t.screen.Show()
}

// layout builds the screen contents top to bottom.
func (t *TUI) layout() []row {
	title := tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	rows := []row{
		{{text: "MAGE VS. ORC KING", style: title}},
		plain(strings.Repeat("=", 50)),
	}

	if t.view != nil {
		rows = append(rows,
			fighterRow(t.view.Player),
			fighterRow(t.view.Opponent),
			plain(""),
		)
		if t.view.Phase == game.PhaseAwaitingPlayerMove {
			rows = append(rows, plain(fmt.Sprintf("Turn %d - Choose your move:", t.view.Turn)))
			for i, m := range t.view.Player.Moves() {
				rows = append(rows, plain(fmt.Sprintf("%d. %s", i+1, m)))
			}
			rows = append(rows, plain(""))
		}
	}

	for _, msg := range t.messages {
		rows = append(rows, plain(msg))
	}
	if t.notice != "" {
		rows = append(rows, row{{text: t.notice, style: tcell.StyleDefault.Foreground(tcell.ColorRed)}})
	}
	if t.prompt != "" {
		rows = append(rows, plain(""), row{{text: t.prompt, style: tcell.StyleDefault.Bold(true)}})
	}
	return rows
}

func fighterRow(f *entity.Fighter) row {
	name := tcell.StyleDefault.Foreground(f.Color()).Bold(true)
	bar := tcell.StyleDefault.Foreground(gamedata.HealthColor(f.HP(), f.MaxHP))
	return row{
		{text: fmt.Sprintf("%-10s", f.Name), style: name},
		{text: fmt.Sprintf("%3d/%-3d HP ", f.HP(), f.MaxHP), style: tcell.StyleDefault},
		{text: "[" + HPBar(f.HP(), f.MaxHP, hpBarWidth) + "]", style: bar},
	}
}

func gameOverMessage(v game.View) string {
	switch v.Outcome {
	case game.OutcomePlayerWins:
		return fmt.Sprintf("VICTORY! The %s has defeated the %s!", v.Player.Name, v.Opponent.Name)
	case game.OutcomeOpponentWins:
		return fmt.Sprintf("DEFEAT! The %s has overwhelmed the %s!", v.Opponent.Name, v.Player.Name)
	default:
		return "Thanks for playing Mage vs. Orc King!"
	}
}
