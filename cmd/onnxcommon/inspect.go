package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zerfoo/onnxcommon/pkg/inspector"
)

func newInspectCmd(a *app) *cobra.Command {
	var fileType string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a summary of an ONNX or ZMF model",
		Long: `Prints a summary of a model. The format is inferred from the .onnx or .zmf
extension unless --type is given. ZMF models can be dumped as JSON with --json.`,
		Args: cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]
		detectedType := strings.ToLower(fileType)
		if detectedType == "" {
			ext := strings.ToLower(filepath.Ext(inputFile))
			switch ext {
			case ".onnx":
				detectedType = "onnx"
			case ".zmf":
				detectedType = "zmf"
			default:
				return fmt.Errorf("could not infer file type from extension '%s', please specify --type", ext)
			}
		}

		switch detectedType {
		case "onnx":
			if asJSON {
				return fmt.Errorf("--json is only supported for ZMF models")
			}
			return inspector.WriteONNX(cmd.OutOrStdout(), inputFile)
		case "zmf":
			return inspector.WriteZMF(cmd.OutOrStdout(), inputFile, asJSON)
		}
		return fmt.Errorf("unsupported model type '%s', must be 'onnx' or 'zmf'", detectedType)
	})
	cmd.Flags().StringVar(&fileType, "type", "", "Type of model to inspect: 'onnx' or 'zmf'")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the whole ZMF model as JSON")
	return cmd
}
