// Package datatypes describes the types of graph variables and converts them to ONNX type
// messages.
package datatypes

import (
	"fmt"
	"strings"

	"github.com/zerfoo/onnxcommon/internal/onnx"
)

// DataType is the type of a graph variable.
type DataType interface {
	ToOnnxType() *onnx.TypeProto
	DocString() string
}

// Dim is one tensor dimension: fixed, symbolic or unknown.
type Dim struct {
	value int64
	param string
	fixed bool
}

// Fixed returns a dimension of known size.
func Fixed(n int64) Dim { return Dim{value: n, fixed: true} }

// Symbolic returns a named dimension resolved at run time, such as a batch size.
func Symbolic(name string) Dim { return Dim{param: name} }

// Unknown is a dimension with neither size nor name.
var Unknown = Dim{}

// Shape builds dimensions from ints, strings and nils; anything else yields an error.
func Shape(dims ...any) ([]Dim, error) {
	out := make([]Dim, len(dims))
	for i, d := range dims {
		switch v := d.(type) {
		case nil:
			out[i] = Unknown
		case int:
			out[i] = Fixed(int64(v))
		case int64:
			out[i] = Fixed(v)
		case string:
			out[i] = Symbolic(v)
		case Dim:
			out[i] = v
		default:
			return nil, fmt.Errorf("dimension %d has unsupported type %T", i, d)
		}
	}
	return out, nil
}

// IsFixed reports whether the size is known.
func (d Dim) IsFixed() bool { return d.fixed }

// Value is the fixed size, or zero.
func (d Dim) Value() int64 { return d.value }

// Param is the symbolic name, or "".
func (d Dim) Param() string { return d.param }

func (d Dim) String() string {
	switch {
	case d.fixed:
		return fmt.Sprint(d.value)
	case d.param != "":
		return d.param
	}
	return "?"
}

func (d Dim) toOnnx() *onnx.TensorShapeProto_Dimension {
	switch {
	case d.fixed:
		return onnx.DimValue(d.value)
	case d.param != "":
		return onnx.DimParam(d.param)
	}
	return &onnx.TensorShapeProto_Dimension{}
}

// TensorType is a tensor of a given element type. A nil Shape means unknown rank.
type TensorType struct {
	ElemType onnx.TensorProto_DataType
	Shape    []Dim
	Doc      string
}

// ToOnnxType converts the tensor type to its ONNX form.
func (t *TensorType) ToOnnxType() *onnx.TypeProto {
	var shape *onnx.TensorShapeProto
	if t.Shape != nil {
		shape = &onnx.TensorShapeProto{Dim: make([]*onnx.TensorShapeProto_Dimension, len(t.Shape))}
		for i, d := range t.Shape {
			shape.Dim[i] = d.toOnnx()
		}
	}
	return onnx.MakeTensorType(t.ElemType, shape)
}

// DocString returns the documentation attached to the type.
func (t *TensorType) DocString() string { return t.Doc }

func (t *TensorType) String() string {
	dims := make([]string, len(t.Shape))
	for i, d := range t.Shape {
		dims[i] = d.String()
	}
	return fmt.Sprintf("%s[%s]", t.ElemType, strings.Join(dims, ","))
}

func FloatTensorType(shape ...Dim) *TensorType {
	return &TensorType{ElemType: onnx.TensorProto_FLOAT, Shape: shape}
}

func DoubleTensorType(shape ...Dim) *TensorType {
	return &TensorType{ElemType: onnx.TensorProto_DOUBLE, Shape: shape}
}

func Float16TensorType(shape ...Dim) *TensorType {
	return &TensorType{ElemType: onnx.TensorProto_FLOAT16, Shape: shape}
}

func Int32TensorType(shape ...Dim) *TensorType {
	return &TensorType{ElemType: onnx.TensorProto_INT32, Shape: shape}
}

func Int64TensorType(shape ...Dim) *TensorType {
	return &TensorType{ElemType: onnx.TensorProto_INT64, Shape: shape}
}

func StringTensorType(shape ...Dim) *TensorType {
	return &TensorType{ElemType: onnx.TensorProto_STRING, Shape: shape}
}

func BooleanTensorType(shape ...Dim) *TensorType {
	return &TensorType{ElemType: onnx.TensorProto_BOOL, Shape: shape}
}

// ElemTypeByName maps names such as "float" or "int64" to element types.
func ElemTypeByName(name string) (onnx.TensorProto_DataType, error) {
	switch strings.ToLower(name) {
	case "float", "float32":
		return onnx.TensorProto_FLOAT, nil
	case "double", "float64":
		return onnx.TensorProto_DOUBLE, nil
	case "float16":
		return onnx.TensorProto_FLOAT16, nil
	case "int8":
		return onnx.TensorProto_INT8, nil
	case "uint8":
		return onnx.TensorProto_UINT8, nil
	case "int16":
		return onnx.TensorProto_INT16, nil
	case "uint16":
		return onnx.TensorProto_UINT16, nil
	case "int32":
		return onnx.TensorProto_INT32, nil
	case "int64", "int":
		return onnx.TensorProto_INT64, nil
	case "uint32":
		return onnx.TensorProto_UINT32, nil
	case "uint64":
		return onnx.TensorProto_UINT64, nil
	case "string":
		return onnx.TensorProto_STRING, nil
	case "bool", "boolean":
		return onnx.TensorProto_BOOL, nil
	}
	if v, ok := onnx.TensorProto_DataType_value[strings.ToUpper(name)]; ok && v != 0 {
		return onnx.TensorProto_DataType(v), nil
	}
	return onnx.TensorProto_UNDEFINED, fmt.Errorf("unknown element type %q", name)
}
