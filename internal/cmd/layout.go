package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/multicheck/internal/multicheck"
	"github.com/Iron-Ham/multicheck/internal/tui/styles"
	"github.com/Iron-Ham/multicheck/internal/tui/view"
)

func newLayoutCmd() *cobra.Command {
	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the checkbox group without interaction",
		Long: `Render the checkbox group once, with the preselected values applied, and
exit. Colors are used only when stdout is a terminal. With --json the column
matrix is printed instead, placeholders included.`,
		Args: cobra.NoArgs,
		RunE: runLayout,
	}
	layoutCmd.Flags().Int("width", 0, "truncate labels to fit this many cells (default terminal width)")
	layoutCmd.Flags().Bool("json", false, "print the column matrix as JSON")
	return layoutCmd
}

func runLayout(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	c := s.newController()
	state := view.NewMultiCheckState(s.cfg.MultiCheck.Label, c, s.cfg.MultiCheck.ColumnCount())
	state.ColumnGap = s.cfg.TUI.ColumnGap

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeMatrix(out, state)
	}

	width, _ := cmd.Flags().GetInt("width")
	st := styles.Plain()
	if fd, ok := terminalFd(out); ok {
		st = styles.New(styles.ThemeName(s.cfg.TUI.Theme))
		if width == 0 {
			if w, _, err := term.GetSize(fd); err == nil {
				width = w
			}
		}
	}
	state.MaxLabelWidth = view.LabelBudget(width, len(state.Columns), state.ColumnGap)

	_, err = fmt.Fprintln(out, view.RenderMultiCheck(state, st))
	return err
}

// terminalFd returns the file descriptor behind w when w is a terminal.
func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

type matrixCell struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Checked     bool   `json:"checked"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

type matrix struct {
	SelectAll bool           `json:"select_all"`
	Rows      int            `json:"rows"`
	Columns   [][]matrixCell `json:"columns"`
}

func writeMatrix(w io.Writer, state *view.MultiCheckState) error {
	doc := matrix{
		SelectAll: state.AllSelected,
		Columns:   make([][]matrixCell, len(state.Columns)),
	}
	for i, column := range state.Columns {
		doc.Rows = max(doc.Rows, len(column))
		cells := make([]matrixCell, len(column))
		for j, opt := range column {
			cells[j] = matrixCell{
				Label:       opt.Label,
				Value:       opt.Value,
				Checked:     opt.Value != "" && state.IsSelected(opt.Value),
				Placeholder: opt == multicheck.Placeholder,
			}
		}
		doc.Columns[i] = cells
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
