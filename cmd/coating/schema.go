package main

import (
	"github.com/spf13/cobra"

	"infinite-coating-tool/internal/schema"
)

func newSchemaCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Write the JSON schema of coating documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return schema.Write(outPath, schema.Build())
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the JSON schema")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
