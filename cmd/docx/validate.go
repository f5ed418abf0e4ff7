package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docx/pkg/docx"
)

func newValidateCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a manifest and every reference it makes without writing a package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := assemble(manifestPath)
			if err != nil {
				return err
			}

			_, err = d.Build()
			var ierr *docx.IntegrityError
			if errors.As(err, &ierr) {
				for _, issue := range ierr.Issues {
					fmt.Fprintln(cmd.OutOrStdout(), issue)
				}
				return fmt.Errorf("%d unresolved references", len(ierr.Issues))
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", manifestPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML document manifest")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
