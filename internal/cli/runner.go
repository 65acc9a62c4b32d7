package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/cards/internal/model"
	"github.com/Makepad-fr/cards/internal/state"
	"github.com/Makepad-fr/cards/internal/ui"
)

// listOptions tune how ls and run print the final state.
type listOptions struct {
	Group bool // split into cards with options set / without
	JSON  bool
}

func (o *listOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.Group, "group", false, "Group output by cards with options set / clear")
	cmd.Flags().BoolVar(&o.JSON, "json", false, "Print the app state as JSON")
}

func newListCmd(app *App) *cobra.Command {
	var opt listOptions
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the seeded cards",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runScript(cmd.OutOrStdout(), nil, opt)
		},
	}
	opt.bind(cmd)
	return cmd
}

func newRunCmd(app *App) *cobra.Command {
	var opt listOptions
	cmd := &cobra.Command{
		Use:   "run ACTION...",
		Short: "Apply actions to the seeded cards and print the result",
		Long: strings.TrimSpace(`
Actions are applied in order after the initial data is loaded:

  add                  append a new card
  rm                   drop the last card from the list
  reverse              reverse the list
  reset                clear every option and undo a reversal
  toggle:<id>:<key>    flip one option

Action type names (ADD_ITEM, REMOVE_ITEM, REVERSE_LIST, RESET_DATA) are accepted too.
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: %s", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			actions := make([]state.Action, 0, len(args))
			for _, a := range args {
				act, err := ParseAction(a)
				if err != nil {
					return err
				}
				actions = append(actions, act)
			}
			return app.runScript(cmd.OutOrStdout(), actions, opt)
		},
	}
	opt.bind(cmd)
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one card with its description",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.newStore()
			if err != nil {
				return err
			}
			store.SetInitialData()
			it, ok := store.Item(model.ID(args[0]))
			if !ok {
				return usagef("no item with id %q (run `cards ls` to see ids)", args[0])
			}
			w := cmd.OutOrStdout()
			ui.Panel(w, ui.CardLines(1, it, 80))
			if md := ui.Markdown(it.Description, 78); md != "" {
				fmt.Fprintln(w, md)
			}
			return nil
		},
	}
}

// ParseAction reads one script token.
func ParseAction(s string) (state.Action, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "toggle:"); ok {
		id, key, ok := strings.Cut(rest, ":")
		if !ok || id == "" || key == "" {
			return state.Action{}, usagef("bad toggle %q: want toggle:<id>:<key>", s)
		}
		return state.Toggle(model.ID(id), key), nil
	}
	switch strings.ToLower(s) {
	case "add", "add_item":
		return state.Action{Type: state.AddItem}, nil
	case "rm", "remove", "remove_item":
		return state.Action{Type: state.RemoveItem}, nil
	case "reverse", "reverse_list":
		return state.Action{Type: state.ReverseList}, nil
	case "reset", "reset_data":
		return state.Action{Type: state.ResetData}, nil
	}
	return state.Action{}, usagef("unknown action %q", s)
}

// runScript seeds a fresh store, dispatches actions and prints the result.
func (app *App) runScript(w io.Writer, actions []state.Action, opt listOptions) error {
	store, err := app.newStore()
	if err != nil {
		return err
	}
	store.SetInitialData()
	for _, a := range actions {
		store.Dispatch(a)
	}

	if opt.JSON {
		b, err := json.MarshalIndent(store.AppState(), "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		fmt.Fprintln(w, string(b))
		return nil
	}
	renderList(w, store.AppState(), opt.Group)
	return nil
}

// -------------- rendering helpers --------------

func renderList(w io.Writer, app state.AppState, group bool) {
	t := ui.Current()
	active, idle := stats(app.Items)
	sw := t.SwitchOff
	if app.IsReversed {
		sw = t.SwitchOn
	}
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d   %s %s",
		ui.B(ui.C(t.Title, "Cards")),
		ui.C(t.Success, t.SymSet), active,
		ui.C(t.Pending, t.SymUnset), idle,
		ui.C(t.Accent, "Total"), len(app.Items),
		ui.C(t.Muted, "Reverse"), sw,
	)

	set, total := 0, 0
	for _, it := range app.Items {
		set += it.Options.CountSet()
		total += it.Options.Len()
	}

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(set, total, 28)))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(app.Items)...)
	} else {
		lines = append(lines, flatLines(app.Items, 1)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: `cards run toggle:<id>:<key>` flips an option"))
	ui.Panel(w, lines)
}

func stats(items []model.Item) (active, idle int) {
	for _, it := range items {
		if it.Options.CountSet() > 0 {
			active++
		} else {
			idle++
		}
	}
	return
}

func flatLines(items []model.Item, from int) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "no items")}
	}
	var out []string
	for i, it := range items {
		out = append(out, ui.CardLines(from+i, it, 80)...)
	}
	return out
}

func groupLines(items []model.Item) []string {
	var active, idle []model.Item
	for _, it := range items {
		if it.Options.CountSet() > 0 {
			active = append(active, it)
		} else {
			idle = append(idle, it)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, ui.C(t.Accent, "Active"))
	if len(active) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(active, 1)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, "Clear"))
	if len(idle) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(idle, len(active)+1)...)
	}
	return lines
}
