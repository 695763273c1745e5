package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type prompter struct {
	in     *bufio.Reader
	inFile *os.File
	out    io.Writer
}

func newPrompter(in *os.File, out io.Writer) *prompter {
	return &prompter{
		in:     bufio.NewReader(in),
		inFile: in,
		out:    out,
	}
}

func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readSecret reads without echo from a terminal and falls back to a plain
// line read when stdin is redirected.
func (p *prompter) readSecret(prompt string) (string, error) {
	fd := int(p.inFile.Fd())
	if !term.IsTerminal(fd) {
		return p.readLine(prompt)
	}

	fmt.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}

	return string(secret), nil
}
