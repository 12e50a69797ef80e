package controller

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// OutputMode selects how reports are rendered.
type OutputMode string

// Supported output modes.
const (
	OutputAuto   OutputMode = "auto"
	OutputPlain  OutputMode = "plain"
	OutputStyled OutputMode = "styled"
)

// ParseOutputMode validates an output mode name. An empty name means auto.
func ParseOutputMode(name string) (OutputMode, error) {
	switch mode := OutputMode(name); mode {
	case "":
		return OutputAuto, nil
	case OutputAuto, OutputPlain, OutputStyled:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (want auto, plain or styled)", name)
	}
}

// Styled reports whether w gets the lipgloss renderer. Auto styles terminals only.
func (o OutputMode) Styled(w io.Writer) bool {
	switch o {
	case OutputStyled:
		return true
	case OutputPlain:
		return false
	default:
		return isTerminal(w)
	}
}

// NewUI returns the renderer for the command output: a TUI when the mode
// styles it, plain tables otherwise.
func NewUI(cmd *cobra.Command, mode OutputMode) UI {
	out := cmd.OutOrStdout()
	if mode.Styled(out) {
		return NewTUI(out)
	}

	return NewSimpleUI(cmd)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
