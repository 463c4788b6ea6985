package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zerfoo/onnxcommon/internal/logger"
	"github.com/zerfoo/onnxcommon/internal/onnx"
)

func newConvertCmd(a *app) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "convert <model.onnx>",
		Short: "Convert an ONNX model to ZMF",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]
		if outputFile == "" {
			outputFile = baseName(inputFile) + ".zmf"
		}

		model, err := onnx.ReadModelFile(inputFile)
		if err != nil {
			return err
		}
		if err := writeZMF(model, inputFile, outputFile); err != nil {
			return err
		}
		logger.L().Info("model.converted", "input", inputFile, "output", outputFile,
			"nodes", len(model.GetGraph().GetNode()))
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully converted and saved model to: %s\n", outputFile)
		return nil
	})
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Path for the converted ZMF file (default <input>.zmf)")
	return cmd
}
