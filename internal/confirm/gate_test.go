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
	"strings"
	"testing"

	"github.com/mikelane/helmsweep/internal/sweep"
)

// fakePrompt records invocations and returns a fixed answer.
type fakePrompt struct {
	asked  int
	answer bool
}

func (p *fakePrompt) Ask(_ string) (bool, error) {
	p.asked++
	return p.answer, nil
}

func TestShouldProceed_dry_run_always_declines(t *testing.T) {
	prompt := &fakePrompt{answer: true}

	proceed, err := ShouldProceed(5, sweep.ModeDryRun, prompt)

	if err != nil {
		t.Fatalf("ShouldProceed() returned error: %v", err)
	}
	if proceed {
		t.Error("ShouldProceed() = true in dry-run mode, want false")
	}
	if prompt.asked != 0 {
		t.Errorf("prompt consulted %d times in dry-run mode, want 0", prompt.asked)
	}
}

func TestShouldProceed_force_proceeds_without_prompting(t *testing.T) {
	prompt := &fakePrompt{answer: false}

	proceed, err := ShouldProceed(5, sweep.ModeForce, prompt)

	if err != nil {
		t.Fatalf("ShouldProceed() returned error: %v", err)
	}
	if !proceed {
		t.Error("ShouldProceed() = false in force mode, want true")
	}
	if prompt.asked != 0 {
		t.Errorf("prompt consulted %d times in force mode, want 0", prompt.asked)
	}
}

func TestShouldProceed_interactive_with_zero_candidates_declines_without_prompting(t *testing.T) {
	prompt := &fakePrompt{answer: true}

	proceed, err := ShouldProceed(0, sweep.ModeInteractive, prompt)

	if err != nil {
		t.Fatalf("ShouldProceed() returned error: %v", err)
	}
	if proceed {
		t.Error("ShouldProceed() = true with zero candidates, want false")
	}
	if prompt.asked != 0 {
		t.Errorf("prompt consulted %d times with zero candidates, want 0", prompt.asked)
	}
}

func TestShouldProceed_interactive_delegates_to_prompt_exactly_once(t *testing.T) {
	for _, answer := range []bool{true, false} {
		prompt := &fakePrompt{answer: answer}

		proceed, err := ShouldProceed(2, sweep.ModeInteractive, prompt)

		if err != nil {
			t.Fatalf("ShouldProceed() returned error: %v", err)
		}
		if proceed != answer {
			t.Errorf("ShouldProceed() = %v, want prompt answer %v", proceed, answer)
		}
		if prompt.asked != 1 {
			t.Errorf("prompt consulted %d times, want 1", prompt.asked)
		}
	}
}

func TestTerminalPrompt_Ask_recognizes_answers(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
	}

	for _, tt := range tests {
		prompt := &TerminalPrompt{In: strings.NewReader(tt.input), Out: &strings.Builder{}}

		got, err := prompt.Ask("Proceed?")

		if err != nil {
			t.Fatalf("Ask(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Ask(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTerminalPrompt_Ask_reasks_on_ambiguous_input(t *testing.T) {
	out := &strings.Builder{}
	prompt := &TerminalPrompt{In: strings.NewReader("maybe\nok\ny\n"), Out: out}

	got, err := prompt.Ask("Proceed?")

	if err != nil {
		t.Fatalf("Ask() returned error: %v", err)
	}
	if !got {
		t.Error("Ask() = false after eventual 'y', want true")
	}
	if count := strings.Count(out.String(), "Please answer"); count != 2 {
		t.Errorf("expected 2 re-ask messages, got %d", count)
	}
}

func TestTerminalPrompt_Ask_end_of_input_declines(t *testing.T) {
	prompt := &TerminalPrompt{In: strings.NewReader(""), Out: &strings.Builder{}}

	got, err := prompt.Ask("Proceed?")

	if err != nil {
		t.Fatalf("Ask() returned error: %v", err)
	}
	if got {
		t.Error("Ask() = true on EOF, want false")
	}
}
