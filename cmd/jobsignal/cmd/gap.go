package cmd

import (
	"errors"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
	"github.com/anatolykoptev/go_jobsignal/internal/toolutil"
	"github.com/spf13/cobra"
)

var gapCmd = &cobra.Command{
	Use:   "gap --resume FILE --job FILE",
	Short: "Compare a resume against a job description",
	Long: `Report matched skills, prioritized gaps with learning resources, extra skills
and per-category coverage. One of the two files may be "-" for stdin.`,
	Args: cobra.NoArgs,
	RunE: runGap,
}

func init() {
	gapCmd.Flags().String("resume", "", "resume file (- for stdin)")
	gapCmd.Flags().String("job", "", "job description file (- for stdin)")
	_ = gapCmd.MarkFlagRequired("resume")
	_ = gapCmd.MarkFlagRequired("job")
}

func runGap(cmd *cobra.Command, _ []string) error {
	resumePath, _ := cmd.Flags().GetString("resume")
	jobPath, _ := cmd.Flags().GetString("job")
	if resumePath == "-" && jobPath == "-" {
		return errors.New("only one of --resume and --job can read stdin")
	}
	resume, err := readInput(cmd, resumePath)
	if err != nil {
		return err
	}
	job, err := readInput(cmd, jobPath)
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("catalog")
	sel, err := toolutil.ResolveSelector(name, catalog.SkillTaxonomy)
	if err != nil {
		return err
	}
	r, j := toolutil.PrepareText(resume), toolutil.PrepareText(job)
	return writeResult(cmd, signals.AnalyzeTwoTexts(r.Text, j.Text, sel))
}
