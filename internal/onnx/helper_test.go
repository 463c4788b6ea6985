package onnx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestMakeTensor(t *testing.T) {
	tests := []struct {
		name     string
		dataType TensorProto_DataType
		dims     []int64
		vals     any
		check    func(t *testing.T, tp *TensorProto)
		wantErr  string
	}{
		{
			name:     "float from float64 slice",
			dataType: TensorProto_FLOAT,
			dims:     []int64{2, 1},
			vals:     []float64{1, 2},
			check: func(t *testing.T, tp *TensorProto) {
				assert.Equal(t, []float32{1, 2}, tp.GetFloatData())
				assert.Equal(t, []int64{2, 1}, tp.GetDims())
			},
		},
		{
			name:     "float from nested any",
			dataType: TensorProto_FLOAT,
			dims:     []int64{2, 2},
			vals:     []any{[]any{1, 2.5}, []any{3, 4}},
			check: func(t *testing.T, tp *TensorProto) {
				assert.Equal(t, []float32{1, 2.5, 3, 4}, tp.GetFloatData())
			},
		},
		{
			name:     "int64",
			dataType: TensorProto_INT64,
			dims:     []int64{3},
			vals:     []int{-1, 0, 7},
			check: func(t *testing.T, tp *TensorProto) {
				assert.Equal(t, []int64{-1, 0, 7}, tp.GetInt64Data())
			},
		},
		{
			name:     "bool stored as int32",
			dataType: TensorProto_BOOL,
			dims:     []int64{2},
			vals:     []bool{true, false},
			check: func(t *testing.T, tp *TensorProto) {
				assert.Equal(t, []int32{1, 0}, tp.GetInt32Data())
			},
		},
		{
			name:     "strings",
			dataType: TensorProto_STRING,
			dims:     []int64{2},
			vals:     []string{"a", "bc"},
			check: func(t *testing.T, tp *TensorProto) {
				assert.Equal(t, [][]byte{[]byte("a"), []byte("bc")}, tp.GetStringData())
			},
		},
		{
			name:     "scalar",
			dataType: TensorProto_DOUBLE,
			dims:     nil,
			vals:     3.5,
			check: func(t *testing.T, tp *TensorProto) {
				assert.Equal(t, []float64{3.5}, tp.GetDoubleData())
			},
		},
		{
			name:     "size mismatch",
			dataType: TensorProto_FLOAT,
			dims:     []int64{2, 2},
			vals:     []float32{1, 2},
			wantErr:  "does not match the size",
		},
		{
			name:     "string in numeric tensor",
			dataType: TensorProto_INT64,
			dims:     []int64{1},
			vals:     []any{"x"},
			wantErr:  "cannot be stored as INT64",
		},
		{
			name:     "negative dimension",
			dataType: TensorProto_FLOAT,
			dims:     []int64{-1},
			vals:     []float32{1},
			wantErr:  "is negative",
		},
		{
			name:     "float16 bit patterns",
			dataType: TensorProto_FLOAT16,
			dims:     []int64{4},
			vals:     []float32{1, 2, -0.5, 65504},
			check: func(t *testing.T, tp *TensorProto) {
				assert.Equal(t, []int32{0x3c00, 0x4000, 0xb800, 0x7bff}, tp.GetInt32Data())
				assert.Empty(t, tp.GetFloatData())
			},
		},
		{
			name:     "bfloat16 bit patterns",
			dataType: TensorProto_BFLOAT16,
			dims:     []int64{2, 2},
			vals:     [][]float64{{1, 2}, {-0.5, 1.0 / 3}},
			check: func(t *testing.T, tp *TensorProto) {
				assert.Equal(t, []int32{0x3f80, 0x4000, 0xbf00, 0x3eab}, tp.GetInt32Data())
			},
		},
		{
			name:     "float16 rejects strings",
			dataType: TensorProto_FLOAT16,
			dims:     []int64{1},
			vals:     []any{"1"},
			wantErr:  "cannot be stored as FLOAT16",
		},
		{
			name:     "uint64 above max int64",
			dataType: TensorProto_UINT64,
			dims:     []int64{2},
			vals:     []uint64{math.MaxUint64, 1},
			check: func(t *testing.T, tp *TensorProto) {
				assert.Equal(t, []uint64{math.MaxUint64, 1}, tp.GetUint64Data())
			},
		},
		{
			name:     "uint32 out of range",
			dataType: TensorProto_UINT32,
			dims:     []int64{1},
			vals:     []uint64{1 << 32},
			wantErr:  "cannot be stored as UINT32",
		},
		{
			name:     "uint64 does not fit int64",
			dataType: TensorProto_INT64,
			dims:     []int64{1},
			vals:     []uint64{1 << 63},
			wantErr:  "cannot be stored as INT64",
		},
		{
			name:     "element count overflow",
			dataType: TensorProto_FLOAT,
			dims:     []int64{1 << 32, 1 << 32},
			vals:     []float32{},
			wantErr:  "describe more than",
		},
		{
			name:     "zero dimension",
			dataType: TensorProto_FLOAT,
			dims:     []int64{0, 1 << 62, 4},
			vals:     []float32{},
			check: func(t *testing.T, tp *TensorProto) {
				assert.Empty(t, tp.GetFloatData())
			},
		},
		{
			name:     "unsupported type",
			dataType: TensorProto_COMPLEX64,
			dims:     []int64{1},
			vals:     []float32{1},
			wantErr:  "unsupported data type COMPLEX64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := MakeTensor("w", tt.dataType, tt.dims, tt.vals)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "w", tp.GetName())
			assert.Equal(t, int32(tt.dataType), tp.GetDataType())
			tt.check(t, tp)
		})
	}
}

func TestMakeAttribute(t *testing.T) {
	tensor := &TensorProto{Name: proto.String("t")}
	tests := []struct {
		name     string
		value    any
		wantType AttributeProto_AttributeType
		check    func(t *testing.T, a *AttributeProto)
	}{
		{"int", 3, AttributeProto_INT, func(t *testing.T, a *AttributeProto) { assert.Equal(t, int64(3), a.GetI()) }},
		{"bool", true, AttributeProto_INT, func(t *testing.T, a *AttributeProto) { assert.Equal(t, int64(1), a.GetI()) }},
		{"float", 0.5, AttributeProto_FLOAT, func(t *testing.T, a *AttributeProto) { assert.Equal(t, float32(0.5), a.GetF()) }},
		{"string", "relu", AttributeProto_STRING, func(t *testing.T, a *AttributeProto) { assert.Equal(t, []byte("relu"), a.GetS()) }},
		{"tensor", tensor, AttributeProto_TENSOR, func(t *testing.T, a *AttributeProto) { assert.Same(t, tensor, a.GetT()) }},
		{"ints", []int64{1, 2}, AttributeProto_INTS, func(t *testing.T, a *AttributeProto) { assert.Equal(t, []int64{1, 2}, a.GetInts()) }},
		{"floats", []float32{1, 2}, AttributeProto_FLOATS, func(t *testing.T, a *AttributeProto) {
			assert.Equal(t, []float32{1, 2}, a.GetFloats())
		}},
		{"ints and floats promote", []any{1, 2.5}, AttributeProto_FLOATS, func(t *testing.T, a *AttributeProto) {
			assert.Equal(t, []float32{1, 2.5}, a.GetFloats())
		}},
		{"strings", []any{"a", "b"}, AttributeProto_STRINGS, func(t *testing.T, a *AttributeProto) {
			assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, a.GetStrings())
		}},
		{"empty typed list", []int64{}, AttributeProto_INTS, func(t *testing.T, a *AttributeProto) { assert.Empty(t, a.GetInts()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := MakeAttribute("k", tt.value)
			require.NoError(t, err)
			assert.Equal(t, "k", a.GetName())
			assert.Equal(t, tt.wantType, a.GetType())
			tt.check(t, a)
		})
	}
}

func TestBFloat16Bits(t *testing.T) {
	assert.Equal(t, uint16(0x3f80), BFloat16Bits(math.Float32frombits(0x3f808000)), "tie rounds to even")
	assert.Equal(t, uint16(0x3f82), BFloat16Bits(math.Float32frombits(0x3f818000)), "tie rounds up to even")
	assert.Equal(t, uint16(0x7f80), BFloat16Bits(float32(math.Inf(1))))
	assert.Equal(t, uint16(0x7fc0), BFloat16Bits(float32(math.NaN())))
}

func TestMakeAttributeErrors(t *testing.T) {
	_, err := MakeAttribute("vals", []any{1, "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixed types")

	_, err = MakeAttribute("empty", []any{})
	require.Error(t, err)

	_, err = MakeAttribute("m", map[string]int{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type map[string]int")

	_, err = MakeAttribute("seed", uint64(math.MaxUint64))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflows int64")

	_, err = MakeAttribute("seeds", []uint64{1, math.MaxUint64})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1 of attribute \"seeds\" overflows int64")

	a, err := MakeAttribute("seed", uint64(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), a.GetI())
}

func TestMakeNodeSortsAttributes(t *testing.T) {
	node, err := MakeNode("Gemm", []string{"a", "b"}, []string{"y"}, []Attr{
		{Name: "transB", Value: 1},
		{Name: "alpha", Value: 1.0},
		{Name: "skipped", Value: nil},
	})
	require.NoError(t, err)
	require.Len(t, node.GetAttribute(), 2)
	assert.Equal(t, "alpha", node.GetAttribute()[0].GetName())
	assert.Equal(t, "transB", node.GetAttribute()[1].GetName())
	assert.Equal(t, "Gemm(a, b) -> (y)", NodeString(node))
}

func TestIRVersionForOpset(t *testing.T) {
	cases := map[int64]int64{1: 3, 8: 3, 9: 4, 10: 5, 11: 6, 13: 7, 15: 8, 18: 8, 19: 9, 21: 10, 30: IRVersion}
	for opset, want := range cases {
		assert.Equal(t, want, IRVersionForOpset(opset), "opset %d", opset)
	}
}
