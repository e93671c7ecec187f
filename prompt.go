package clip

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// Affirmations are the inputs [Stdio.Confirm] accepts as a yes, compared
	// case-insensitive. Any other non-empty input is a no.
	Affirmations = []string{"y", "yes", "1", "true"}

	choiceIndexPattern = regexp.MustCompile(`^\d+$`)
)

// Ask writes question (plus defaultVal in brackets when one is given) and
// blocks for one line of input. Empty input selects defaultVal, otherwise
// the input is returned with surrounding whitespace trimmed.
func (s *Stdio) Ask(question, defaultVal string) string {
	if len(defaultVal) > 0 {
		s.Writef("%s [%s]: ", question, defaultVal)
	} else {
		s.Write(question + ": ")
	}
	input := s.readLine()
	if len(input) == 0 {
		return defaultVal
	}
	return input
}

// Confirm writes question with a [Y/n] or [y/N] hint reflecting defaultVal
// and blocks for one line of input. Empty input selects defaultVal; anything
// else is a yes only if it is one of [Affirmations].
func (s *Stdio) Confirm(question string, defaultVal bool) bool {
	hint := "[y/N]"
	if defaultVal {
		hint = "[Y/n]"
	}
	s.Writef("%s %s: ", question, hint)
	input := strings.ToLower(s.readLine())
	if len(input) == 0 {
		return defaultVal
	}
	return slices.Contains(Affirmations, input)
}

// Choice writes question followed by the numbered choices and blocks until
// one is selected, either by its 1-based index or by exact value. The first
// choice equal to defaultVal is marked "(default)" and selected on empty
// input. Invalid input reprompts indefinitely.
//
// An empty choices list fails with [ErrNoChoices]. Note that with no default
// an exhausted input stream also reprompts indefinitely, since it reads as
// empty input and empty input matches no choice.
func (s *Stdio) Choice(question string, choices []string, defaultVal string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}
	defaultIndex := 0
	s.Writeln(question)
	s.Writeln("")
	for i, choice := range choices {
		suffix := ""
		if defaultIndex == 0 && len(defaultVal) > 0 && choice == defaultVal {
			defaultIndex = i + 1
			suffix = " (default)"
		}
		s.Writef("  [%d] %s%s\n", i+1, choice, suffix)
	}
	s.Writeln("")
	for {
		if defaultIndex > 0 {
			s.Writef("Enter your choice [%d]: ", defaultIndex)
		} else {
			s.Write("Enter your choice: ")
		}
		input := s.readLine()
		if len(input) == 0 && len(defaultVal) > 0 {
			return defaultVal, nil
		}
		if choiceIndexPattern.MatchString(input) {
			if index, err := strconv.Atoi(input); err == nil && index >= 1 && index <= len(choices) {
				return choices[index-1], nil
			}
		}
		if slices.Contains(choices, input) {
			return input, nil
		}
		s.Error("Invalid choice. Please try again.")
	}
}
