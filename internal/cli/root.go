// Package cli provides the command-line interface for gitlab-roulette.
package cli

import (
	"fmt"
	"time"

	"github.com/remip/gitlab-roulette/internal/app"
	"github.com/remip/gitlab-roulette/internal/domain"
	"github.com/remip/gitlab-roulette/internal/infra/config"
	"github.com/remip/gitlab-roulette/internal/infra/report"
	"github.com/remip/gitlab-roulette/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for gitlab-roulette.
// A non-nil container is used as-is; otherwise one is built from the
// merged configuration. Passing a container is useful for testing.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts struct {
		URL        string
		Token      string
		ConfigFile string
		Report     string
		DryRun     bool
	}

	cmd := &cobra.Command{
		Use:   "roulette",
		Short: "Randomly distribute GitLab issues among project members",
		Long: `gitlab-roulette fetches the issues and members of a GitLab project,
lets you pick a set of issues (by milestone, by id range, or manually),
distributes them evenly and randomly across the members you choose,
and writes the assignments back to GitLab.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigFile, config.Overrides{
				URL:   opts.URL,
				Token: opts.Token,
			})
			if err != nil {
				return err
			}

			if c == nil {
				c, err = app.New(cfg)
				if err != nil {
					return err
				}
			} else {
				c.Config = cfg
			}

			uc := usecase.NewRunRoulette(c.Tracker, c.Prompter, c.Rand, c.Logger, cmd.OutOrStdout())
			out, err := uc.Execute(cmd.Context(), usecase.RunRouletteInput{
				ProjectURL: c.Config.URL,
				DryRun:     opts.DryRun,
			})
			if err != nil {
				return err
			}

			if out.Applied && opts.Report != "" {
				if err := report.Write(opts.Report, out.Project, out.Assignment, time.Now()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", opts.Report)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.URL, "url", "u", "", "URL of the project")
	cmd.Flags().StringVarP(&opts.Token, "token", "t", "", "GitLab token to use to connect")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config-file", "c", "./"+domain.ConfigFileName, "File to use as config")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Write the applied assignment to a YAML file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview the assignment without applying it")

	return cmd
}
