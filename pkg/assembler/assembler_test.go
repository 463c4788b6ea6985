package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/zerfoo/onnxcommon/internal/onnx"
	"github.com/zerfoo/onnxcommon/pkg/container"
	"github.com/zerfoo/onnxcommon/pkg/datatypes"
)

func filledContainer(t *testing.T) *container.ModelComponentContainer {
	t.Helper()
	c := container.NewModelComponentContainer(15)
	x := datatypes.NewVariable("X", "X", datatypes.FloatTensorType(datatypes.Symbolic("N"), datatypes.Fixed(2)))
	y := datatypes.NewVariable("Y", "Y", datatypes.FloatTensorType(datatypes.Symbolic("N"), datatypes.Fixed(1)))
	require.NoError(t, c.AddInput(x))
	require.NoError(t, c.AddOutput(y))
	require.NoError(t, c.AddInitializer("W", onnx.TensorProto_FLOAT, []int64{2, 1}, []float32{0.5, 2}))
	require.NoError(t, c.AddNode("MatMul", []string{"X", "W"}, "XW", container.WithVersion(13)))
	require.NoError(t, c.AddNode("Normalizer", "XW", "Y",
		container.WithDomain("ai.onnx.ml"), container.WithAttribute("norm", "L2")))
	require.NoError(t, c.AddNode("Binarizer", "XW", "B",
		container.WithDomain("ai.onnx.ml"), container.WithVersion(3)))
	return c
}

func TestBuild(t *testing.T) {
	c := filledContainer(t)
	m, err := Build(c,
		WithGraphName("linear"),
		WithProducer("onnxcommon", "0.1.0"),
		WithDomain("ai.zerfoo"),
		WithModelVersion(2),
		WithDocString("test model"),
		WithMetadata("source", "sklearn"),
		WithMetadata("author", "ci"),
	)
	require.NoError(t, err)

	assert.Equal(t, int64(8), m.GetIrVersion())
	assert.Equal(t, "onnxcommon", m.GetProducerName())
	assert.Equal(t, "0.1.0", m.GetProducerVersion())
	assert.Equal(t, "ai.zerfoo", m.GetDomain())
	assert.Equal(t, int64(2), m.GetModelVersion())
	assert.Equal(t, "test model", m.GetDocString())

	g := m.GetGraph()
	assert.Equal(t, "linear", g.GetName())
	assert.Len(t, g.GetNode(), 3)
	assert.Len(t, g.GetInitializer(), 1)
	assert.Equal(t, "X", g.GetInput()[0].GetName())
	assert.Equal(t, "Y", g.GetOutput()[0].GetName())

	require.Len(t, m.GetOpsetImport(), 2)
	assert.Equal(t, "", m.GetOpsetImport()[0].GetDomain())
	assert.Equal(t, int64(15), m.GetOpsetImport()[0].GetVersion())
	assert.Equal(t, "ai.onnx.ml", m.GetOpsetImport()[1].GetDomain())
	assert.Equal(t, int64(3), m.GetOpsetImport()[1].GetVersion())

	require.Len(t, m.GetMetadataProps(), 2)
	assert.Equal(t, "author", m.GetMetadataProps()[0].GetKey())
	assert.Equal(t, "sklearn", m.GetMetadataProps()[1].GetValue())

	data, err := proto.Marshal(m)
	require.NoError(t, err)
	back := &onnx.ModelProto{}
	require.NoError(t, proto.Unmarshal(data, back))
	assert.True(t, proto.Equal(m, back))
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)

	_, err = Build(container.NewModelComponentContainer(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target opset must be positive")
}

func TestOpsetImportsFoldsAiOnnx(t *testing.T) {
	c := container.NewModelComponentContainer(11)
	require.NoError(t, c.AddNode("Relu", "x", "y", container.WithDomain("ai.onnx"), container.WithVersion(6)))

	imports := OpsetImports(c)
	require.Len(t, imports, 1)
	assert.Equal(t, "", imports[0].GetDomain())
	assert.Equal(t, int64(11), imports[0].GetVersion())
}
