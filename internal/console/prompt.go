package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter wraps the session's input and output streams. The read helpers
// loop until the user types something parseable; only a broken stream (EOF)
// surfaces as an error.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) readFloat(prompt string) (float64, error) {
	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(p.out, "> Invalid entry. Please type a number.")
			continue
		}
		return value, nil
	}
}

// readInt accepts any number and truncates it to an integer.
func (p *prompter) readInt(prompt string) (int, error) {
	value, err := p.readFloat(prompt)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}
