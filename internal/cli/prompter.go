package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ReadlinePrompter implements the reconciler's Prompter capability on an
// interactive terminal.
type ReadlinePrompter struct{}

// NewReadlinePrompter creates a terminal-backed prompter.
func NewReadlinePrompter() *ReadlinePrompter {
	return &ReadlinePrompter{}
}

// Ask prints the question, shows the allowed vocabulary in the prompt, and
// returns the raw line the operator typed. EOF and interrupt surface as
// errors; the caller treats a failed prompt as an abort.
func (p *ReadlinePrompter) Ask(question string, allowed []string) (string, error) {
	fmt.Println(question)

	rl, err := readline.New(fmt.Sprintf("[%s]: ", strings.Join(allowed, "/")))
	if err != nil {
		return "", fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err == readline.ErrInterrupt || err == io.EOF {
		return "", fmt.Errorf("prompt closed without an answer")
	}
	if err != nil {
		return "", fmt.Errorf("readline error: %w", err)
	}
	return line, nil
}
