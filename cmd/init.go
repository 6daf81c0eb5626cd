package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/content"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Writes the built-in content to a YAML file to start from",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "content.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
		if initForce {
			flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		}
		f, err := os.OpenFile(path, flags, 0o644)
		if err != nil {
			if os.IsExist(err) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := content.Encode(f, content.Default()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s; set content_file: %s in config.yaml to use it\n", path, path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
