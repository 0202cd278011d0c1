package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <document.json>",
	Short: "Render a generated unit in the terminal",
	Long: `Pretty-print a document produced by "lmsgen generate". This is a
stateless developer tool for judging content quality — no database, no
events.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6")).
			Padding(0, 1)

	stepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#14B8A6"))

	passageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC")).
			Width(76)

	itemStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1).
			Width(74)

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Italic(true)
)

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	var doc blocks.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	fmt.Println(titleStyle.Render(doc.Title))
	fmt.Println()

	for _, step := range doc.Steps {
		fmt.Println(stepStyle.Render(fmt.Sprintf("Step %d — %s", step.Index, step.Title)))
		for _, b := range step.Blocks {
			fmt.Println(renderBlock(b))
		}
		fmt.Println()
	}
	return nil
}

func renderBlock(b blocks.Block) string {
	c := b.Content
	switch b.Type {
	case blocks.TypeText:
		if c.Text == nil {
			break
		}
		return passageStyle.Render(c.Text.Text)

	case blocks.TypeMultipleChoice:
		if c.MultipleChoice == nil {
			break
		}
		var sb strings.Builder
		sb.WriteString(c.MultipleChoice.Question)
		for i, opt := range c.MultipleChoice.Options {
			line := fmt.Sprintf("\n  %c) %s", 'a'+i, opt)
			if opt == c.MultipleChoice.CorrectAnswer {
				line += answerStyle.Render("  ✓")
			}
			sb.WriteString(line)
		}
		return itemStyle.Render(sb.String())

	case blocks.TypeOpenQuestion:
		if c.OpenQuestion == nil {
			break
		}
		s := c.OpenQuestion.Question
		if c.OpenQuestion.ExpectedAnswer != "" {
			s += "\n" + dimStyle.Render("Expected: "+c.OpenQuestion.ExpectedAnswer)
		}
		return itemStyle.Render(s)

	case blocks.TypeOrdering:
		if c.Ordering == nil {
			break
		}
		var sb strings.Builder
		sb.WriteString(c.Ordering.Instruction)
		for i, item := range c.Ordering.Items {
			fmt.Fprintf(&sb, "\n  %d. %s", i+1, item)
		}
		return itemStyle.Render(sb.String())

	case blocks.TypeCategorization:
		if c.Categorization == nil {
			break
		}
		var sb strings.Builder
		sb.WriteString(c.Categorization.Instruction)
		sb.WriteString("\n" + dimStyle.Render("Categories: "+strings.Join(c.Categorization.Categories, ", ")))
		for _, item := range c.Categorization.Items {
			fmt.Fprintf(&sb, "\n  %s → %s", item.Text, item.Category)
		}
		return itemStyle.Render(sb.String())

	case blocks.TypeFillInBlanks:
		if c.FillInBlanks == nil {
			break
		}
		s := c.FillInBlanks.Text
		s += "\n" + answerStyle.Render("Answers: "+strings.Join(c.FillInBlanks.Answers, ", "))
		return itemStyle.Render(s)

	case blocks.TypeMemoryGame:
		if c.MemoryGame == nil {
			break
		}
		var sb strings.Builder
		sb.WriteString(c.MemoryGame.Instruction)
		for _, p := range c.MemoryGame.Pairs {
			fmt.Fprintf(&sb, "\n  %s ↔ %s", p.First, p.Second)
		}
		return itemStyle.Render(sb.String())

	case blocks.TypeAudioResponse:
		if c.AudioResponse == nil {
			break
		}
		return itemStyle.Render("🎤 " + c.AudioResponse.Prompt)

	case blocks.TypeInteractiveChat:
		if c.InteractiveChat == nil {
			break
		}
		s := "💬 " + c.InteractiveChat.Prompt
		if c.InteractiveChat.OpeningMessage != "" {
			s += "\n" + dimStyle.Render(c.InteractiveChat.OpeningMessage)
		}
		return itemStyle.Render(s)
	}
	return dimStyle.Render(fmt.Sprintf("(unrenderable block type %s)", b.Type))
}
