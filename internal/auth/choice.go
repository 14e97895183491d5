package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tracklab/tracklab/internal/settings"
	"github.com/tracklab/tracklab/internal/ui"
)

// Choice is one acquisition strategy. The set is closed; menu
// visibility is computed separately by VisibleChoices.
type Choice int

const (
	ChoiceAnonymous Choice = iota
	ChoiceCreateAccount
	ChoiceUseExisting
	ChoiceDryRun
)

// String returns the menu label for the choice.
func (c Choice) String() string {
	switch c {
	case ChoiceAnonymous:
		return "Private dashboard, no account required"
	case ChoiceCreateAccount:
		return "Create a tracklab account"
	case ChoiceUseExisting:
		return "Use an existing tracklab account"
	case ChoiceDryRun:
		return "Don't visualize my results"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// VisibleChoices computes the menu subset for the given configuration:
// no anonymous entry when anonymous mode is "never", no dry-run entry
// inside a notebook or when the caller disallows offline fallback.
func VisibleChoices(s *settings.Settings, noOffline bool) []Choice {
	all := []Choice{ChoiceAnonymous, ChoiceCreateAccount, ChoiceUseExisting, ChoiceDryRun}
	choices := make([]Choice, 0, len(all))
	for _, c := range all {
		if c == ChoiceAnonymous && s.Anonymous == settings.AnonymousNever {
			continue
		}
		if c == ChoiceDryRun && (s.Notebook || noOffline) {
			continue
		}
		choices = append(choices, c)
	}
	return choices
}

// Prompter decides the acquisition strategy, asking the operator when
// the environment allows it. In and Out are injectable so the menu loop
// is testable with scripted input.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

func (p *Prompter) in() io.Reader {
	if p.In != nil {
		return p.In
	}
	return os.Stdin
}

func (p *Prompter) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stderr
}

// Decide picks the acquisition strategy. Decision order: forced
// anonymous mode, then non-interactive environments (dry-run), then a
// local service (existing account), then the interactive menu. The menu
// re-prompts without limit until a valid 1-based index is entered.
func (p *Prompter) Decide(s *settings.Settings, noOffline bool) (Choice, error) {
	if s.Anonymous == settings.AnonymousMust {
		return ChoiceAnonymous, nil
	}
	if !s.StdoutIsTTY || !s.StdinIsTTY {
		return ChoiceDryRun, nil
	}
	if s.LocalService {
		return ChoiceUseExisting, nil
	}

	choices := VisibleChoices(s, noOffline)
	for i, c := range choices {
		ui.Logf("(%d) %s", i+1, c)
	}

	reader := bufio.NewReader(p.in())
	for {
		fmt.Fprintf(p.out(), "%s Enter your choice: ", ui.Prefix)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			// Interrupted read aborts the whole flow.
			return 0, fmt.Errorf("reading choice: %w", err)
		}
		idx, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || idx < 1 || idx > len(choices) {
			ui.Warn("Invalid choice")
			if err != nil {
				return 0, fmt.Errorf("reading choice: %w", err)
			}
			continue
		}
		choice := choices[idx-1]
		ui.Logf("You chose '%s'", choice)
		return choice, nil
	}
}
