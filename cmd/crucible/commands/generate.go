package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/crucible/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Generate a build descriptor for every benchmark case in the suite manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			manifest, _ := cmd.Flags().GetString("config")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			report, _ := cmd.Flags().GetString("report")

			return c.app.Run(cmd.Context(), dir, app.RunOptions{
				ManifestName: manifest,
				Parallelism:  parallelism,
				ReportPath:   report,
			})
		},
	}
	cmd.Flags().StringP("config", "c", "", "Manifest file name within the suite directory (default crucible.yaml)")
	cmd.Flags().IntP("parallelism", "p", 0, "Maximum number of descriptors generated at once (0 uses all CPUs)")
	cmd.Flags().String("report", "", "Path for the generation report (default crucible-report.json)")
	return cmd
}
