package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatText = "text"
)

var rootCmd = &cobra.Command{
	Use:   "jobsignal",
	Short: "Job posting decoder and skills gap analyzer",
	Long: "Deterministic keyword and context analysis of job postings and resumes.\n" +
		"Plain text, markdown and HTML inputs are accepted.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != formatJSON && format != formatText {
			return fmt.Errorf("invalid --format %q (valid: %s, %s)", format, formatJSON, formatText)
		}
		maxChars, _ := cmd.Flags().GetInt("max-chars")
		engine.Init(engine.Config{MaxInputChars: maxChars})
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "skill catalog: job_signals or skill_taxonomy (default depends on the command)")
	rootCmd.PersistentFlags().String("format", formatJSON, "output format: json or text")
	rootCmd.PersistentFlags().Int("max-chars", engine.DefaultMaxInputChars, "characters kept from each input, 0 = unlimited")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(gapCmd)
	rootCmd.AddCommand(catalogCmd)
}

// readInput reads a file, or stdin when path is "-" or empty.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResult(cmd *cobra.Command, res signals.AnalysisResult) error {
	if format, _ := cmd.Flags().GetString("format"); format == formatText {
		_, err := fmt.Fprint(cmd.OutOrStdout(), engine.FormatResult(res))
		return err
	}
	return writeJSON(cmd.OutOrStdout(), res)
}
