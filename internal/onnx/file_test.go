package onnx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func sampleModel(t *testing.T) *ModelProto {
	t.Helper()
	weights, err := MakeTensor("W", TensorProto_FLOAT, []int64{2, 1}, []float32{0.5, -1.5})
	require.NoError(t, err)
	shape, err := MakeTensor("shape", TensorProto_INT64, []int64{2}, []int64{1, -1})
	require.NoError(t, err)
	matmul, err := MakeNode("MatMul", []string{"X", "W"}, []string{"Y"}, nil)
	require.NoError(t, err)
	matmul.Name = proto.String("matmul_1")
	scaler, err := MakeNode("Scaler", []string{"Y"}, []string{"Z"}, []Attr{
		{Name: "offset", Value: []float32{0.25}},
		{Name: "scale", Value: []float32{2}},
	})
	require.NoError(t, err)
	scaler.Domain = proto.String("ai.onnx.ml")
	optional, err := MakeNode("Clip", []string{"Z", "", "max"}, []string{"out"}, nil)
	require.NoError(t, err)

	x := MakeValueInfo("X", MakeTensorType(TensorProto_FLOAT, &TensorShapeProto{
		Dim: []*TensorShapeProto_Dimension{DimParam("N"), DimValue(2)},
	}), "features")
	out := MakeValueInfo("out", MakeTensorType(TensorProto_FLOAT, &TensorShapeProto{
		Dim: []*TensorShapeProto_Dimension{DimValue(0), {}},
	}), "")

	graph := MakeGraph([]*NodeProto{matmul, scaler, optional}, "g",
		[]*ValueInfoProto{x}, []*ValueInfoProto{out}, []*TensorProto{weights, shape}, nil, "")
	m := MakeModel(graph, []*OperatorSetIdProto{
		MakeOperatorSetID("", 15),
		MakeOperatorSetID("ai.onnx.ml", 2),
	})
	m.ProducerName = proto.String("onnxcommon")
	m.MetadataProps = []*StringStringEntryProto{{Key: proto.String("origin"), Value: proto.String("sklearn")}}
	return m
}

func TestModelFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.onnx")
	want := sampleModel(t)
	require.NoError(t, WriteModelFile(path, want))

	m, err := ReadModelFile(path)
	require.NoError(t, err)
	assert.True(t, proto.Equal(want, m), "round trip changed the model:\n%v\n%v", want, m)
	assert.Equal(t, "g", m.GetGraph().GetName())
	assert.Len(t, m.GetGraph().GetNode(), 3)
	assert.Equal(t, []string{"Z", "", "max"}, m.GetGraph().GetNode()[2].GetInput())

	dims := m.GetGraph().GetOutput()[0].GetType().GetTensorType().GetShape().GetDim()
	require.Len(t, dims, 2)
	assert.True(t, HasDimValue(dims[0]))
	assert.Equal(t, int64(0), dims[0].GetDimValue())
	assert.False(t, HasDimValue(dims[1]))
	assert.Empty(t, dims[1].GetDimParam())

	_, err = ReadModelFile(filepath.Join(t.TempDir(), "missing.onnx"))
	require.Error(t, err)
}

func TestReadModelFileKeepsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 8)
	b = protowire.AppendTag(b, 20, protowire.BytesType)
	b = protowire.AppendString(b, "training_info")
	b = protowire.AppendTag(b, 99, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 1)

	path := filepath.Join(t.TempDir(), "future.onnx")
	require.NoError(t, os.WriteFile(path, b, 0o644))

	m, err := ReadModelFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8), m.GetIrVersion())

	out := filepath.Join(t.TempDir(), "rewritten.onnx")
	require.NoError(t, WriteModelFile(out, m))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, b, data)
}

func TestTensorDataIsPacked(t *testing.T) {
	tensor := &TensorProto{FloatData: []float32{1, 2}}
	data, err := proto.Marshal(tensor)
	require.NoError(t, err)

	num, typ, n := protowire.ConsumeTag(data)
	require.Greater(t, n, 0)
	assert.Equal(t, protowire.Number(4), num)
	assert.Equal(t, protowire.BytesType, typ)
}

func TestReadModelFileTruncated(t *testing.T) {
	data, err := proto.Marshal(sampleModel(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "truncated.onnx")
	require.NoError(t, os.WriteFile(path, data[:len(data)-3], 0o644))

	_, err = ReadModelFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal ONNX protobuf")
}

func TestWriteModelFileNil(t *testing.T) {
	err := WriteModelFile(filepath.Join(t.TempDir(), "nil.onnx"), nil)
	require.Error(t, err)
}
