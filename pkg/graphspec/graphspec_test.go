package graphspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerfoo/onnxcommon/internal/onnx"
	"github.com/zerfoo/onnxcommon/pkg/container"
)

const linearYAML = `
name: linear
target_opset: 15
inputs:
  - {name: X, type: float, shape: [N, 2]}
outputs:
  - {name: Y, type: float, shape: [N, null], doc: scores}
value_info:
  - {name: XW, type: float}
initializers:
  - {name: W, type: float, dims: [2, 1], values: [0.5, 2]}
nodes:
  - op_type: MatMul
    version: 13
    inputs: [X, W]
    outputs: XW
  - op_type: Normalizer
    domain: ai.onnx.ml
    name: norm
    inputs: XW
    outputs: [Y]
    attributes:
      norm: L2
  - op_type: Constant
    outputs: [C]
    attributes:
      value_floats: [1, 2.5]
`

func TestParseAndPopulate(t *testing.T) {
	s, err := Parse([]byte(linearYAML))
	require.NoError(t, err)
	assert.Equal(t, "linear", s.Name)
	assert.Equal(t, int64(15), s.TargetOpset)

	c := container.NewModelComponentContainer(s.TargetOpset)
	require.NoError(t, s.Populate(c))

	require.Len(t, c.Inputs(), 1)
	dims := c.Inputs()[0].GetType().GetTensorType().GetShape().GetDim()
	require.Len(t, dims, 2)
	assert.Equal(t, "N", dims[0].GetDimParam())
	assert.Equal(t, int64(2), dims[1].GetDimValue())

	out := c.Outputs()[0]
	assert.Equal(t, "scores", out.GetDocString())
	assert.False(t, onnx.HasDimValue(out.GetType().GetTensorType().GetShape().GetDim()[1]))

	assert.Nil(t, c.ValueInfo()[0].GetType().GetTensorType().GetShape())
	assert.Equal(t, []float32{0.5, 2}, c.Initializers()[0].GetFloatData())

	nodes := c.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, []string{"XW"}, nodes[0].GetOutput())
	assert.Equal(t, "ai.onnx.ml", nodes[1].GetDomain())
	assert.Equal(t, "norm", nodes[1].GetName())
	assert.Equal(t, []byte("L2"), nodes[1].GetAttribute()[0].GetS())
	assert.Empty(t, nodes[2].GetInput())
	assert.Equal(t, []float32{1, 2.5}, nodes[2].GetAttribute()[0].GetFloats())

	assert.Equal(t, []container.DomainVersion{
		{Domain: "", Version: 1},
		{Domain: "", Version: 13},
		{Domain: "ai.onnx.ml", Version: 1},
	}, c.NodeDomainVersionPairs())
}

func TestPopulateSurfacesTypeConflict(t *testing.T) {
	s, err := Parse([]byte(`
nodes:
  - op_type: LabelEncoder
    domain: ai.onnx.ml
    inputs: x
    outputs: y
    attributes:
      keys: [1, a]
`))
	require.NoError(t, err)

	c := container.NewModelComponentContainer(15)
	err = s.Populate(c)
	require.ErrorIs(t, err, container.ErrTypeConflict)
	assert.Contains(t, err.Error(), "node 0 (LabelEncoder)")
	assert.Empty(t, c.Nodes())
}

func TestPopulateRejectsUnknownType(t *testing.T) {
	s, err := Parse([]byte(`inputs: [{name: X, type: quaternion}]`))
	require.NoError(t, err)
	require.Error(t, s.Populate(container.NewModelComponentContainer(15)))
}

func TestPopulateRejectsUnresolvedInitializer(t *testing.T) {
	s, err := Parse([]byte(`initializers: [{name: W, type: float, dims: [-1], values: [1]}]`))
	require.NoError(t, err)
	err = s.Populate(container.NewModelComponentContainer(15))
	require.ErrorIs(t, err, container.ErrInvalidArgument)
}

func TestPopulateRejectsNullInitializerDim(t *testing.T) {
	s, err := Parse([]byte("initializers:\n  - {name: w, type: float, dims: [2, null], values: [1.0, 2.0]}"))
	require.NoError(t, err)
	require.Len(t, s.Initializers[0].Dims, 2)
	assert.Nil(t, s.Initializers[0].Dims[1])

	c := container.NewModelComponentContainer(15)
	err = s.Populate(c)
	require.ErrorIs(t, err, container.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `initializer "w"`)
	assert.Empty(t, c.Initializers())
}

func TestPopulateRecordsVersionZero(t *testing.T) {
	s, err := Parse([]byte(`
nodes:
  - {op_type: Custom, domain: ai.zerfoo, version: 0, inputs: x, outputs: y}
  - {op_type: Relu, inputs: y, outputs: z}
`))
	require.NoError(t, err)
	require.NotNil(t, s.Nodes[0].Version)
	assert.Nil(t, s.Nodes[1].Version)

	c := container.NewModelComponentContainer(15)
	require.NoError(t, s.Populate(c))
	assert.Equal(t, []container.DomainVersion{
		{Domain: "", Version: 1},
		{Domain: "ai.zerfoo", Version: 0},
	}, c.NodeDomainVersionPairs())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("nodes: [{inputs: x}]"))
	require.Error(t, err)

	_, err = Parse([]byte("nodes: [{op_type: Relu, attributes: [1, 2]}]"))
	require.Error(t, err)

	_, err = Parse([]byte("inputs: {"))
	require.Error(t, err)
}

func TestLoadAndRawContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
inputs:
  - {name: X, type: double}
  - {name: X, type: double}
outputs:
  - {name: label, onnx_name: label_out, type: int64, shape: [1]}
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	raw, err := s.RawContainer()
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, raw.InputNames())
	assert.Equal(t, []string{"label"}, raw.OutputNames())
	assert.Same(t, s, raw.RawModel())
	assert.Equal(t, "label_out", raw.Outputs()[0].FullName())
	assert.Equal(t, onnx.TensorProto_INT64, onnx.TensorProto_DataType(
		raw.Outputs()[0].Type().ToOnnxType().GetTensorType().GetElemType()))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
