package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/glamour-api/internal/design"
)

var codecCmd = &cobra.Command{
	Use:   "codec",
	Short: "Convert between design codes and design files",
}

var codecDecodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Print a design code as a YAML design file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := design.FromCode(args[0])
		if err != nil {
			return err
		}
		out, err := d.MarshalFile()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var codecEncodeFile string

var codecEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the design code of a YAML design file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := design.LoadFile(codecEncodeFile)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Code())
		return err
	},
}

func init() {
	codecEncodeCmd.Flags().StringVar(&codecEncodeFile, "file", "", "YAML design file (required)")
	_ = codecEncodeCmd.MarkFlagRequired("file")

	codecCmd.AddCommand(codecDecodeCmd)
	codecCmd.AddCommand(codecEncodeCmd)
}
