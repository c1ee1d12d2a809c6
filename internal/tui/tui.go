// Package tui renders notes and runs the interactive prompts of encnotes.
//
// Prompts are small Bubble Tea programs that read one line each. They write
// to the output given to [NewPrompter] (stderr in the CLI) so that stdout
// carries only command results. When the input is not a terminal it is read
// line by line and each program gets exactly one line, so answers can be
// piped in.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

type runFunc func(ctx context.Context, model tea.Model) (tea.Model, error)

// Prompter asks the user for passwords and note fields.
type Prompter struct {
	in  io.Reader
	out io.Writer
	run runFunc

	// lines is set for non-terminal input and shared by all prompts.
	lines *bufio.Reader
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: in, out: out}
	if in != nil && !isTerminal(in) {
		p.lines = bufio.NewReader(in)
	}
	p.run = p.runProgram
	return p
}

// Password reads a masked line. The value is returned as typed, without
// trimming.
func (p *Prompter) Password(ctx context.Context, label string) (string, error) {
	return p.prompt(ctx, newPromptModel(label, "", true))
}

// Text reads a plain line, starting from initial so that the user can edit
// an existing value.
func (p *Prompter) Text(ctx context.Context, label, initial string) (string, error) {
	return p.prompt(ctx, newPromptModel(label, initial, false))
}

func (p *Prompter) prompt(ctx context.Context, model promptModel) (string, error) {
	finalModel, err := p.run(ctx, model)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if !result.submitted {
		return "", ErrPromptCancelled
	}

	return result.value(), nil
}

func (p *Prompter) runProgram(ctx context.Context, model tea.Model) (tea.Model, error) {
	input := p.in
	if p.lines != nil {
		line, err := p.nextLine()
		if err != nil {
			return nil, err
		}
		input = strings.NewReader(line)
	}

	finalModel, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(p.out),
	).Run()
	if errors.Is(err, tea.ErrInterrupted) {
		return finalModel, ErrPromptCancelled
	}
	return finalModel, err
}

// nextLine returns the next input line terminated by a single "\n", which
// the prompt takes as submit. Exhausted input cancels the prompt.
func (p *Prompter) nextLine() (string, error) {
	line, err := p.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	if line == "" {
		return "", ErrPromptCancelled
	}

	return strings.TrimRight(line, "\r\n") + "\n", nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(term.File)
	return ok && term.IsTerminal(f.Fd())
}
