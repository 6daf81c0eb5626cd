package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the content file",
	Long: `The check command loads the configured content file and reports every
problem it finds: missing required fields, projects without bullet points,
duplicate project titles and links that are not absolute http(s) URLs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		page, err := loadPage(appConfig.ContentFile)
		if err != nil {
			var verr *content.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "%d problem(s) found:\n", len(verr.Problems))
				for _, p := range verr.Problems {
					fmt.Fprintf(out, "  - %s\n", p)
				}
			}
			return err
		}

		source := appConfig.ContentFile
		if source == "" {
			source = "built-in content"
		}
		fmt.Fprintf(out, "%s: ok (%d projects, %d roles, %d skill groups, %d publications, %d schools)\n",
			source, len(page.Projects), len(page.Experience), len(page.Skills),
			len(page.Publications), len(page.Education))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
