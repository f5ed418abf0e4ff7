package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docx/internal/manifest"
	"github.com/benjaminschreck/go-docx/pkg/docx"
)

func newBuildCmd() *cobra.Command {
	var manifestPath, outputPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a .docx package from a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := assemble(manifestPath)
			if err != nil {
				return err
			}

			out, err := d.Build()
			if err != nil {
				return err
			}
			if err := out.WriteFile(outputPath); err != nil {
				return err
			}

			docx.WithFields(docx.Fields{
				"output":   outputPath,
				"comments": len(d.Comments()),
			}).Info("document written")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML document manifest")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "out.docx", "output .docx path")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}

// assemble loads, checks and applies a manifest to a new document
func assemble(path string) (*docx.Docx, error) {
	m, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, docx.WithContext(err, "validate manifest", map[string]interface{}{"path": path})
	}

	d := docx.New()
	if err := m.Apply(d); err != nil {
		return nil, docx.WithContext(err, "apply manifest", map[string]interface{}{"path": path})
	}
	return d, nil
}
