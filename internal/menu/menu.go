package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Action runs one menu entry. A returned error ends the run; actions report
// storage failures themselves and keep going.
type Action func(ctx context.Context) error

// Item is one numbered entry
type Item struct {
	Key    string
	Label  string
	Action Action
}

// Menu is a read-dispatch-print loop over numbered items.
// The exit entry is listed last.
type Menu struct {
	Title        string
	ChoicePrompt string
	Items        []Item
	ExitKey      string
	ExitLabel    string
	Farewell     string
	Invalid      string

	Out    io.Writer
	Prompt *Prompter
}

// Run loops until the exit choice, end of input, or an action error.
// End of input anywhere ends the run without error.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.render()

		choice, err := m.Prompt.Line(m.ChoicePrompt)
		if err != nil {
			return ignoreEOF(err)
		}
		choice = strings.TrimSpace(choice)

		if choice == m.ExitKey {
			fmt.Fprintln(m.Out, m.Farewell)
			return nil
		}

		item, ok := m.lookup(choice)
		if !ok {
			fmt.Fprintln(m.Out, m.Invalid)
			continue
		}

		if err := item.Action(ctx); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (m *Menu) render() {
	fmt.Fprintln(m.Out)
	fmt.Fprintln(m.Out, m.Title)
	for _, item := range m.Items {
		fmt.Fprintf(m.Out, "%s. %s\n", item.Key, item.Label)
	}
	fmt.Fprintf(m.Out, "%s. %s\n", m.ExitKey, m.ExitLabel)
}

func (m *Menu) lookup(choice string) (Item, bool) {
	for _, item := range m.Items {
		if item.Key == choice {
			return item, true
		}
	}
	return Item{}, false
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
