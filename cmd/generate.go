package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/outline"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/review"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/stepgen"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/store"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/unitgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a reviewed lesson unit",
	Long: `Plan an outline, generate each step's content, normalize it into strict
blocks, and run the result through validation and auto-fix. The accepted
document is written as JSON.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic to teach (required)")
	generateCmd.Flags().String("source", "", "Path to a source text file to teach from")
	generateCmd.Flags().String("band", "middle", "Audience band: elementary, middle, high-school")
	generateCmd.Flags().String("tier", "medium", "Length tier: short, medium, long")
	generateCmd.Flags().String("mode", "standard", "Generation mode: standard or creative")
	generateCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	generateCmd.Flags().Int("max-retries", review.DefaultMaxRetries, "Fix attempts before giving up on a rejected document")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	sourcePath, _ := cmd.Flags().GetString("source")
	bandVal, _ := cmd.Flags().GetString("band")
	tierVal, _ := cmd.Flags().GetString("tier")
	modeVal, _ := cmd.Flags().GetString("mode")
	outPath, _ := cmd.Flags().GetString("out")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")

	req := unitgen.Request{Topic: topic}

	switch strings.ToLower(bandVal) {
	case "elementary":
		req.Band = outline.BandElementary
	case "middle":
		req.Band = outline.BandMiddle
	case "high-school", "high":
		req.Band = outline.BandHighSchool
	default:
		return fmt.Errorf("invalid band %q: must be elementary, middle, or high-school", bandVal)
	}

	switch strings.ToLower(tierVal) {
	case "short":
		req.Tier = outline.TierShort
	case "medium":
		req.Tier = outline.TierMedium
	case "long":
		req.Tier = outline.TierLong
	default:
		return fmt.Errorf("invalid tier %q: must be short, medium, or long", tierVal)
	}

	switch strings.ToLower(modeVal) {
	case "standard":
		req.Mode = outline.ModeStandard
	case "creative":
		req.Mode = outline.ModeCreative
	default:
		return fmt.Errorf("invalid mode %q: must be standard or creative", modeVal)
	}

	if sourcePath != "" {
		data, err := os.ReadFile(sourcePath)
		if err != nil {
			return fmt.Errorf("read source text: %w", err)
		}
		req.SourceText = string(data)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	workflow := review.NewWorkflow(
		review.NewValidator(provider, review.DefaultValidatorConfig()),
		review.NewFixer(provider, review.DefaultFixerConfig()),
		maxRetries,
	)
	svc := unitgen.New(
		outline.New(provider, outline.DefaultConfig()),
		stepgen.New(provider, stepgen.DefaultConfig()),
		workflow,
		eventRepo,
	)

	fmt.Fprintf(os.Stderr, "Generating %s unit on %q for %s...\n", tierVal, topic, bandVal)

	doc, err := svc.GenerateUnit(ctx, req)
	if err != nil {
		var exhausted *review.ErrExhausted
		if errors.As(err, &exhausted) {
			fmt.Fprintln(os.Stderr, "Review rejected the unit:")
			for _, issue := range exhausted.Result.Issues {
				fmt.Fprintf(os.Stderr, "  [%s] %s: %s\n", issue.Type, issue.Location, issue.Description)
			}
		}
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	out = append(out, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d blocks across %d steps to %s\n",
		doc.BlockCount(), len(doc.Steps), outPath)
	return nil
}
