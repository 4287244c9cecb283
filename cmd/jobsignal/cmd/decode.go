package cmd

import (
	"errors"
	"strings"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
	"github.com/anatolykoptev/go_jobsignal/internal/toolutil"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file|-]",
	Short: "Decode a job posting: skills, experience, salary, red flags, benefits",
	Long: `Analyze one job posting and print its transparency score, detected signals
and recommendations. Reads stdin when no file is given or the file is "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	raw, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		return errors.New("job posting is empty")
	}
	name, _ := cmd.Flags().GetString("catalog")
	sel, err := toolutil.ResolveSelector(name, catalog.JobSignals)
	if err != nil {
		return err
	}
	text := toolutil.PrepareText(raw)
	return writeResult(cmd, signals.AnalyzeSingleText(text.Text, sel))
}
