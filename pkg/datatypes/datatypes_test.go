package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerfoo/onnxcommon/internal/onnx"
)

func TestTensorTypeToOnnxType(t *testing.T) {
	typ := FloatTensorType(Symbolic("N"), Fixed(3), Unknown)
	typ.Doc = "features"

	tp := typ.ToOnnxType()
	tensor := tp.GetTensorType()
	require.NotNil(t, tensor)
	assert.Equal(t, int32(onnx.TensorProto_FLOAT), tensor.GetElemType())

	dims := tensor.GetShape().GetDim()
	require.Len(t, dims, 3)
	assert.Equal(t, "N", dims[0].GetDimParam())
	assert.Equal(t, int64(3), dims[1].GetDimValue())
	assert.True(t, onnx.HasDimValue(dims[1]))
	assert.False(t, onnx.HasDimValue(dims[2]))
	assert.Empty(t, dims[2].GetDimParam())

	assert.Equal(t, "features", typ.DocString())
	assert.Equal(t, "FLOAT[N,3,?]", typ.String())
}

func TestTensorTypeUnknownRank(t *testing.T) {
	tp := Int64TensorType().ToOnnxType()
	assert.Nil(t, tp.GetTensorType().GetShape())

	scalar := &TensorType{ElemType: onnx.TensorProto_INT64, Shape: []Dim{}}
	assert.NotNil(t, scalar.ToOnnxType().GetTensorType().GetShape())
}

func TestShape(t *testing.T) {
	dims, err := Shape(nil, 2, int64(4), "batch")
	require.NoError(t, err)
	assert.Equal(t, []Dim{Unknown, Fixed(2), Fixed(4), Symbolic("batch")}, dims)

	_, err = Shape(1.5)
	require.Error(t, err)
}

func TestElemTypeByName(t *testing.T) {
	cases := map[string]onnx.TensorProto_DataType{
		"float":    onnx.TensorProto_FLOAT,
		"Float64":  onnx.TensorProto_DOUBLE,
		"int":      onnx.TensorProto_INT64,
		"string":   onnx.TensorProto_STRING,
		"BFLOAT16": onnx.TensorProto_BFLOAT16,
	}
	for name, want := range cases {
		got, err := ElemTypeByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ElemTypeByName("complex256")
	require.Error(t, err)
}

func TestNewVariable(t *testing.T) {
	v := NewVariable("input", "", StringTensorType(Fixed(1)))
	assert.Equal(t, "input", v.RawName())
	assert.Equal(t, "input", v.FullName())

	renamed := NewVariable("input", "input1", v.Type())
	assert.Equal(t, "input1", renamed.FullName())
	assert.Equal(t, "input", renamed.RawName())
}
