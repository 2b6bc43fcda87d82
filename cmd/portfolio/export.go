package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Rohancherukuri/portfolio/internal/page"
	"github.com/Rohancherukuri/portfolio/internal/view"
)

func newExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the rendered page to <out>/index.html",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				a.cfg.OutDir = out
			}
			path, err := a.export()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (env PORTFOLIO_OUT)")
	return cmd
}

func (a *app) export() (string, error) {
	th, p, err := a.site()
	if err != nil {
		return "", err
	}

	log := a.log.Named("export")
	b := view.New(th, p)
	path := filepath.Join(a.cfg.OutDir, "index.html")
	if _, err := os.Stat(path); err == nil {
		log.With("path", path).Warn("replacing existing export")
	}
	if err := writeIndex(path, b); err != nil {
		return "", err
	}

	log.WithFields(map[string]any{
		"path":        path,
		"footer_year": b.Now().Year(),
	}).Info("page exported; footer year is fixed until the next export")
	return path, nil
}

// writeIndex renders b in memory and only touches the filesystem once the
// document is complete, so a failed render never leaves a truncated file.
func writeIndex(path string, b view.Builder) error {
	var buf bytes.Buffer
	if err := page.Render(&buf, b); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
