package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"passrank/internal/layout"
	"passrank/pkg/strength"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	suggestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
	patternStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	tokenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Score colors from red through green, index by score.
	scoreStyles = [...]lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("112")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	}
)

func scoreStyle(score int) lipgloss.Style {
	if score < 0 {
		score = 0
	}
	if score >= len(scoreStyles) {
		score = len(scoreStyles) - 1
	}
	return scoreStyles[score]
}

// scoreBar renders the 0-4 score as a five-segment meter.
func scoreBar(score int) string {
	var b strings.Builder
	for i := 0; i <= 4; i++ {
		if i <= score {
			b.WriteString(scoreStyle(score).Render("■"))
		} else {
			b.WriteString(labelStyle.Render("□"))
		}
	}
	return b.String()
}

func emitStyled(r *strength.Result) {
	fmt.Printf("%s %s %s\n",
		scoreBar(r.Score),
		scoreStyle(r.Score).Render(fmt.Sprintf("[%d/4]", r.Score)),
		scoreStyle(r.Score).Render(r.ScoreText))

	fmt.Printf("%s %s\n",
		labelStyle.Render("entropy:"),
		valueStyle.Render(fmt.Sprintf("%.2f bits", r.Entropy)))
	fmt.Printf("%s %s\n",
		labelStyle.Render("guesses:"),
		valueStyle.Render(fmt.Sprintf("10^%.1f", r.GuessesLog10)))

	fmt.Println(labelStyle.Render("crack times:"))
	fmt.Printf("  %s %s\n", labelStyle.Render("online, throttled:  "), r.CrackTimeDisplay.OnlineThrottled)
	fmt.Printf("  %s %s\n", labelStyle.Render("online, unthrottled:"), r.CrackTimeDisplay.OnlineUnthrottled)
	fmt.Printf("  %s %s\n", labelStyle.Render("offline, slow hash: "), r.CrackTimeDisplay.OfflineSlow)
	fmt.Printf("  %s %s\n", labelStyle.Render("offline, fast hash: "), r.CrackTimeDisplay.OfflineFast)

	if len(r.MatchSequence) > 0 {
		fmt.Println(labelStyle.Render("decomposition:"))
		for _, m := range r.MatchSequence {
			detail := matchDetail(m)
			if detail != "" {
				detail = " " + labelStyle.Render(detail)
			}
			fmt.Printf("  %s %s %s%s\n",
				patternStyle.Render(fmt.Sprintf("%-19s", m.Pattern)),
				tokenStyle.Render(fmt.Sprintf("%q", m.Token)),
				valueStyle.Render(fmt.Sprintf("%.2f bits", m.Entropy)),
				detail)
		}
	}

	if r.Warning != "" {
		fmt.Printf("%s %s\n", warningStyle.Render("warning:"), r.Warning)
	}
	for _, s := range r.Suggestions {
		fmt.Printf("%s %s\n", suggestStyle.Render("suggestion:"), s)
	}
}

// matchDetail summarizes the variant-specific fields of a match.
func matchDetail(m strength.Match) string {
	switch m.Pattern {
	case "dictionary", "reverse_dictionary":
		return fmt.Sprintf("(%s #%d)", m.DictionaryName, m.Rank)
	case "l33t":
		subs := make([]string, 0, len(m.Subs))
		for leet, base := range m.Subs {
			subs = append(subs, leet+"→"+base)
		}
		return fmt.Sprintf("(%s #%d, %s)", m.DictionaryName, m.Rank, strings.Join(subs, " "))
	case "spatial":
		return fmt.Sprintf("(%s, %d turns)", m.Graph, m.Turns)
	case "repeat":
		return fmt.Sprintf("(%q x%d)", m.BaseToken, m.RepeatCount)
	case "sequence":
		dir := "descending"
		if m.Ascending {
			dir = "ascending"
		}
		return fmt.Sprintf("(%s, %s)", m.SequenceName, dir)
	case "regex":
		return fmt.Sprintf("(%s)", m.RegexName)
	case "date":
		if m.Day > 0 {
			return fmt.Sprintf("(%02d-%02d-%d)", m.Day, m.Month, m.Year)
		}
		return fmt.Sprintf("(%02d-%d)", m.Month, m.Year)
	default:
		return ""
	}
}

// emitBatchLine writes one compact line per password for batch mode.
func emitBatchLine(r *strength.Result) {
	fmt.Printf("%s %s %s %s\n",
		scoreStyle(r.Score).Render(fmt.Sprintf("%d", r.Score)),
		valueStyle.Render(fmt.Sprintf("%6.2f", r.Entropy)),
		labelStyle.Render(fmt.Sprintf("%-14s", r.CrackTimeDisplay.OfflineSlow)),
		tokenStyle.Render(r.Password))
}

func emitLayouts(graphs []*layout.Graph) {
	fmt.Println(valueStyle.Render("Available keyboard layouts:"))
	for _, g := range graphs {
		fmt.Printf("  %s %s\n",
			patternStyle.Render(fmt.Sprintf("%-12s", g.Name())),
			labelStyle.Render(fmt.Sprintf("%d keys, avg degree %.2f", g.StartingPositions(), g.AverageDegree())))
	}
}
