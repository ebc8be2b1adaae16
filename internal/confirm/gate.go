/*
Copyright (c) 2025 Mike Lane

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mikelane/helmsweep/internal/sweep"
)

// Prompt asks the user a yes/no question.
type Prompt interface {
	Ask(message string) (bool, error)
}

// ShouldProceed decides whether deletion may proceed.
//
// Dry-run always answers false; the caller still produces a full report of
// what would be deleted, so dry-run is a reporting mode, not a no-op. Force
// always answers true without consulting the prompt. Interactive answers
// false without prompting when there is nothing to confirm, and otherwise
// delegates to a single prompt invocation. Retrying ambiguous input is the
// prompt's responsibility, not the gate's.
func ShouldProceed(candidateCount int, mode sweep.Mode, prompt Prompt) (bool, error) {
	switch mode {
	case sweep.ModeDryRun:
		return false, nil
	case sweep.ModeForce:
		return true, nil
	default:
		if candidateCount == 0 {
			return false, nil
		}
		return prompt.Ask(fmt.Sprintf("Do you want to delete %d release(s)?", candidateCount))
	}
}

// TerminalPrompt asks yes/no questions over a reader/writer pair, normally
// stdin and stdout. Ambiguous answers are re-asked until the user gives a
// recognizable one or input runs out.
type TerminalPrompt struct {
	In  io.Reader
	Out io.Writer
}

// Ask prints the message and reads an answer. "y"/"yes" confirm; "n"/"no" or
// an empty line decline. End of input declines.
func (p *TerminalPrompt) Ask(message string) (bool, error) {
	reader := bufio.NewReader(p.In)
	for {
		fmt.Fprintf(p.Out, "%s (y/N): ", message)

		line, err := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			// An empty line declines; so does end of input.
			if err == nil || err == io.EOF {
				return false, nil
			}
			return false, err
		}

		fmt.Fprintln(p.Out, "Please answer 'y' or 'n'")
		if err != nil {
			if err == io.EOF {
				return false, nil
			}
			return false, err
		}
	}
}
