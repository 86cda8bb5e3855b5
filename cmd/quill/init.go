package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/quill/internal/config"
	"github.com/iw2rmb/quill/syntax"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config and color configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if path == "" {
				path = config.DefaultPath()
			}
			if fileExists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			syntaxPath := filepath.Join(filepath.Dir(path), "syntax.yaml")
			if err := syntax.WriteConfig(syntaxPath, syntax.DefaultConfig()); err != nil {
				return err
			}
			cfg := config.Defaults()
			cfg.SyntaxFile = syntaxPath
			if err := config.Write(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\nwrote %s\n", path, syntaxPath)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")
	return cmd
}
