package inspector

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/zerfoo/zmf"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/zerfoo/onnxcommon/internal/onnx"
)

// InspectONNX inspects an ONNX model and prints its summary.
func InspectONNX(inputFile string) error {
	return WriteONNX(os.Stdout, inputFile)
}

// WriteONNX writes the summary printed by InspectONNX to w.
func WriteONNX(w io.Writer, inputFile string) error {
	fmt.Fprintf(w, "Inspecting ONNX model from: %s\n", inputFile)

	model, err := onnx.ReadModelFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load ONNX model: %w", err)
	}

	fmt.Fprintf(w, "Successfully loaded model with IR version: %d\n", model.GetIrVersion())
	if model.GetProducerName() != "" {
		fmt.Fprintf(w, "Producer: %s %s\n", model.GetProducerName(), model.GetProducerVersion())
	}
	for _, op := range model.GetOpsetImport() {
		if op.GetDomain() == "" {
			fmt.Fprintf(w, "Opset version: %d\n", op.GetVersion())
		} else {
			fmt.Fprintf(w, "Opset version (%s): %d\n", op.GetDomain(), op.GetVersion())
		}
	}

	g := model.GetGraph()
	fmt.Fprintf(w, "Graph has %d nodes.\n", len(g.GetNode()))
	fmt.Fprintf(w, "Graph has %d initializers.\n", len(g.GetInitializer()))
	for _, in := range g.GetInput() {
		fmt.Fprintf(w, "Input: %s\n", in.GetName())
	}
	for _, out := range g.GetOutput() {
		fmt.Fprintf(w, "Output: %s\n", out.GetName())
	}
	if len(g.GetNode()) > 0 {
		fmt.Fprintln(w, "\nNodes:")
		for _, n := range g.GetNode() {
			fmt.Fprintf(w, "- %s\n", onnx.NodeString(n))
		}
	}
	return nil
}

// LoadZMF reads and deserializes a ZMF model from a file.
func LoadZMF(file string) (*zmf.Model, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	model := &zmf.Model{}
	if err := proto.Unmarshal(data, model); err != nil {
		return nil, err
	}
	return model, nil
}

// InspectZMF inspects a ZMF model and prints its summary, or the whole model as JSON.
func InspectZMF(inputFile string, asJSON bool) error {
	return WriteZMF(os.Stdout, inputFile, asJSON)
}

// WriteZMF writes the output of InspectZMF to w.
func WriteZMF(w io.Writer, inputFile string, asJSON bool) error {
	model, err := LoadZMF(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load ZMF model: %w", err)
	}

	if asJSON {
		data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(model)
		if err != nil {
			return fmt.Errorf("failed to encode ZMF model as JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "Inspecting ZMF model from: %s\n", inputFile)
	summarizeZMF(w, model)
	return nil
}

func summarizeZMF(w io.Writer, model *zmf.Model) {
	fmt.Fprintf(w, "Producer: %s %s\n", model.GetMetadata().GetProducerName(), model.GetMetadata().GetProducerVersion())
	fmt.Fprintf(w, "Opset version: %d\n", model.GetMetadata().GetOpsetVersion())
	fmt.Fprintf(w, "Graph has %d nodes.\n", len(model.GetGraph().GetNodes()))
	fmt.Fprintf(w, "Graph has %d parameters.\n", len(model.GetGraph().GetParameters()))

	fmt.Fprintln(w, "\nNodes:")
	for _, node := range model.GetGraph().GetNodes() {
		fmt.Fprintf(w, "- Node: %s, OpType: %s\n", node.GetName(), node.GetOpType())
		fmt.Fprintf(w, "  Inputs: %v\n", node.GetInputs())
		fmt.Fprintf(w, "  Outputs: %v\n", node.GetOutputs())
		if len(node.GetAttributes()) == 0 {
			continue
		}
		names := make([]string, 0, len(node.GetAttributes()))
		for name := range node.GetAttributes() {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(w, "  Attributes:")
		for _, name := range names {
			fmt.Fprintf(w, "    - %s: %v\n", name, node.GetAttributes()[name].GetValue())
		}
	}
}
