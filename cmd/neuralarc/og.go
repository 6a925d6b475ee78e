package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	site "github.com/neuralarc/site"
	"github.com/neuralarc/site/content"
)

func newOGCmd() *cobra.Command {
	var (
		out   string
		width int
	)
	cmd := &cobra.Command{
		Use:   "og",
		Short: "Write the social preview image as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := content.Load(cfg.contentFS())
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := site.RenderOG(f, lib.Hero.Effect, width); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "og.png", "output file")
	cmd.Flags().IntVar(&width, "width", 0, "scale the image down to this width")
	return cmd
}
