package main

import (
	"context"
	"io"
	"os"

	"autobuilder/internal/config"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/webshell"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// swConfigCommand renders the service worker build configuration of the web
// client, to stdout or to the file given by --out.
func swConfigCommand(_ *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sw-config",
		Short: "Renders the workbox configuration of the web client",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			out, _ := cmd.Flags().GetString("out")

			var w io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					logger.Fatal(ctx, "could not create output file", zap.String("path", out), zap.Error(err))
				}
				defer func() {
					if err := f.Close(); err != nil {
						logger.Error(ctx, "could not close output file", zap.Error(err))
					}
				}()
				w = f
			}

			if err := webshell.RenderWorkbox(w, webshell.DefaultConfig()); err != nil {
				logger.Fatal(ctx, "could not render workbox config", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringP("out", "o", "", "Output file, stdout when empty")

	return cmd
}
