package main

import (
	"fmt"

	"github.com/ib-77/rpipe/pkg/pipe"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <page>",
	Short: "Render a page to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		site, err := loadSite(cmd)
		if err != nil {
			return err
		}
		page, err := site.Page(args[0])
		if err != nil {
			return err
		}

		strict, _ := cmd.Flags().GetBool("strict")
		ctx := pipe.WithLogger(cmd.Context(), logger.With("page", args[0]))
		ctx = pipe.WithStrict(ctx, strict)

		out := cmd.OutOrStdout()
		if err := page.Render(ctx, out); err != nil {
			return fmt.Errorf("render %s: %w", args[0], err)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
