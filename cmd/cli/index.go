package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codelens-hq/codelens/internal/index"
)

func indexCmd() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "index <file>",
		Short: "Index a source file and print its structural facts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := index.NewFromFile(args[0])
			if err != nil {
				return err
			}

			var out interface{}
			if detailed {
				out = idx.Detailed()
			} else {
				out = idx.Summary()
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Include per-construct fact lists")

	return cmd
}
