package onnx

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// ReadModelFile reads and parses an ONNX model file.
func ReadModelFile(path string) (*ModelProto, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ONNX file %s", path)
	}
	model := &ModelProto{}
	if err := proto.Unmarshal(data, model); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ONNX protobuf %s", path)
	}
	return model, nil
}

// WriteModelFile serializes m to path.
func WriteModelFile(path string, m *ModelProto) error {
	if m == nil {
		return errors.New("cannot write a nil ONNX model")
	}
	data, err := proto.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "failed to marshal ONNX model")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write ONNX file %s", path)
	}
	return nil
}

// NodeString renders a node as "OpType(inputs) -> outputs" for diagnostics.
func NodeString(n *NodeProto) string {
	s := n.GetOpType()
	if n.GetDomain() != "" {
		s = n.GetDomain() + "." + s
	}
	if n.GetName() != "" {
		s += "[" + n.GetName() + "]"
	}
	return s + "(" + strings.Join(n.GetInput(), ", ") + ") -> (" + strings.Join(n.GetOutput(), ", ") + ")"
}
