package assessment

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	bonsai "github.com/faisalkhan91/bonsai-cli/sdk"
)

// Confirmer answers yes/no prompts. Injectable so that headless runs and
// tests can supply canned answers instead of a real input stream.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// StdinConfirmer prompts on Out and reads a single line from In.
// Case-insensitive "yes"/"y" confirms, "no"/"n" declines; anything else is a
// validation error.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c *StdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintln(c.Out, prompt)

	line, err := bufio.NewReader(c.In).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if err != nil && answer == "" {
		return false, err
	}

	switch answer {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return false, &bonsai.ValidationError{
		Field:   "confirmation",
		Message: "Please respond with 'y' or 'n'",
	}
}
