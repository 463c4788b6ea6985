package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	"github.com/zerfoo/onnxcommon/internal/logger"
	"github.com/zerfoo/onnxcommon/internal/onnx"
	"github.com/zerfoo/onnxcommon/pkg/assembler"
	"github.com/zerfoo/onnxcommon/pkg/container"
	"github.com/zerfoo/onnxcommon/pkg/converter"
	"github.com/zerfoo/onnxcommon/pkg/graphspec"
)

type buildOptions struct {
	output string
	opset  int64
	zmf    string
}

func newBuildCmd(a *app) *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build <graph.yaml>",
		Short: "Build an ONNX model from a YAML graph description",
		Long: `Replays a YAML graph description through a model component container and writes
the assembled ONNX model.

The target opset is taken from --opset, then from the description's target_opset,
then from the configuration.`,
		Args: cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		return a.build(cmd, args[0], opts)
	})
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Path for the ONNX file (default <input>.onnx)")
	cmd.Flags().Int64Var(&opts.opset, "opset", 0, "Target opset, overriding the description and config")
	cmd.Flags().StringVar(&opts.zmf, "zmf", "", "Also write the model in ZMF format to this path")
	return cmd
}

func (a *app) build(cmd *cobra.Command, inputFile string, opts *buildOptions) error {
	log := logger.L().With("input", inputFile)

	spec, err := graphspec.Load(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load graph description: %w", err)
	}

	raw, err := spec.RawContainer()
	if err != nil {
		return fmt.Errorf("failed to declare graph signature: %w", err)
	}
	log.Debug("graph.signature", "inputs", raw.InputNames(), "outputs", raw.OutputNames())

	opset := a.cfg.TargetOpset
	switch {
	case opts.opset > 0:
		opset = opts.opset
	case spec.TargetOpset > 0:
		opset = spec.TargetOpset
	}

	c := container.NewModelComponentContainer(opset)
	c.EnableOptimizer = a.cfg.EnableOptimizer
	if err := spec.Populate(c); err != nil {
		return fmt.Errorf("failed to populate container: %w", err)
	}
	for _, n := range c.Nodes() {
		log.Debug("graph.node", "node", onnx.NodeString(n))
	}

	graphName := spec.Name
	if graphName == "" {
		graphName = baseName(inputFile)
	}
	model, err := assembler.Build(c,
		assembler.WithGraphName(graphName),
		assembler.WithProducer(a.cfg.Producer.Name, a.cfg.Producer.Version),
		assembler.WithDomain(a.cfg.Model.Domain),
		assembler.WithModelVersion(a.cfg.Model.Version),
		assembler.WithDocString(spec.Doc),
	)
	if err != nil {
		return fmt.Errorf("failed to assemble model: %w", err)
	}

	output := opts.output
	if output == "" {
		output = baseName(inputFile) + ".onnx"
	}
	if err := onnx.WriteModelFile(output, model); err != nil {
		return err
	}
	log.Info("model.built",
		"output", output,
		"opset", opset,
		"ir_version", model.GetIrVersion(),
		"nodes", len(c.Nodes()),
		"initializers", len(c.Initializers()),
		"domains", len(model.GetOpsetImport()),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully built model with %d nodes and saved to: %s\n", len(c.Nodes()), output)

	if opts.zmf != "" {
		if err := writeZMF(model, output, opts.zmf); err != nil {
			return err
		}
		log.Info("model.zmf_written", "output", opts.zmf)
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully converted and saved model to: %s\n", opts.zmf)
	}
	return nil
}

func writeZMF(model *onnx.ModelProto, modelPath, output string) error {
	zmfModel, err := converter.ToZMFWithPath(model, modelPath)
	if err != nil {
		return fmt.Errorf("failed to convert model: %w", err)
	}
	outBytes, err := proto.Marshal(zmfModel)
	if err != nil {
		return fmt.Errorf("failed to serialize ZMF model: %w", err)
	}
	if err := os.WriteFile(output, outBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write ZMF model: %w", err)
	}
	return nil
}

// baseName strips the directory and extension from path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
