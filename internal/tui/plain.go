package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"rlm/internal/domain"
)

// RunPlain runs a line-oriented chat loop: one query per line, answers
// printed after each. It returns when in is exhausted or the user types
// exit or quit.
func RunPlain(in io.Reader, out io.Writer, assistant domain.Assistant) error {
	fmt.Fprintln(out, "RLM Chatbot ready. Ask a question, or type 'exit' to quit.")
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		q := strings.TrimSpace(scanner.Text())
		if q == "" {
			continue
		}
		if IsExit(q) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		fmt.Fprintln(out, "\n"+assistant.Answer(q))
	}
}
