package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter asks interactive questions on out and reads answers from in.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{reader: bufio.NewReader(in), out: out}
}

// readLine reads one answer without its line ending. io.EOF is returned
// together with any partial final line.
func (p *prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(strings.TrimRight(line, "\r\n")), err
}

// text asks for a value; an empty answer selects defaultValue.
func (p *prompter) text(label, defaultValue string) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(p.out, "%s [%s]: ", label, defaultValue)
		} else {
			fmt.Fprintf(p.out, "%s: ", label)
		}
		line, err := p.readLine()
		if err != nil && err != io.EOF {
			return "", err
		}
		switch {
		case line != "":
			return line, nil
		case defaultValue != "":
			return defaultValue, nil
		case err == io.EOF:
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// confirm asks a yes/no question. End of input selects the default.
func (p *prompter) confirm(label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", label, suffix)
		line, err := p.readLine()
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err == io.EOF {
			return false, fmt.Errorf("invalid response %q", line)
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}
