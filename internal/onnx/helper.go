package onnx

import (
	"math"
	"reflect"
	"sort"

	"github.com/pkg/errors"
	"github.com/x448/float16"
	"google.golang.org/protobuf/proto"
)

const (
	// IRVersion is the newest IR version this package writes.
	IRVersion int64 = 10
	// LatestOpset is the newest default-domain opset with a known IR version.
	LatestOpset int64 = 22
)

// IRVersionForOpset returns the lowest IR version that can carry a default-domain opset.
func IRVersionForOpset(opset int64) int64 {
	switch {
	case opset <= 8:
		return 3
	case opset == 9:
		return 4
	case opset == 10:
		return 5
	case opset == 11:
		return 6
	case opset <= 14:
		return 7
	case opset <= 18:
		return 8
	case opset <= 20:
		return 9
	default:
		return IRVersion
	}
}

// Attr is a named attribute value handed to MakeNode.
type Attr struct {
	Name  string
	Value any
}

// MakeNode builds a NodeProto. Attributes are stored sorted by name; a nil attribute value is
// skipped.
func MakeNode(opType string, inputs, outputs []string, attrs []Attr) (*NodeProto, error) {
	node := &NodeProto{
		OpType: proto.String(opType),
		Input:  append([]string(nil), inputs...),
		Output: append([]string(nil), outputs...),
	}
	sorted := append([]Attr(nil), attrs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	for _, a := range sorted {
		if a.Value == nil {
			continue
		}
		attr, err := MakeAttribute(a.Name, a.Value)
		if err != nil {
			return nil, err
		}
		node.Attribute = append(node.Attribute, attr)
	}
	return node, nil
}

// MakeAttribute infers the attribute type from value. Scalars map to FLOAT, INT or STRING,
// homogeneous lists to FLOATS, INTS or STRINGS, and tensors or graphs to their own kinds.
// Booleans are stored as integers. A list holding both integers and floats becomes FLOATS.
func MakeAttribute(name string, value any) (*AttributeProto, error) {
	attr := &AttributeProto{Name: proto.String(name)}
	switch v := value.(type) {
	case *TensorProto:
		attr.T, attr.Type = v, AttributeProto_TENSOR.Enum()
		return attr, nil
	case *GraphProto:
		attr.G, attr.Type = v, AttributeProto_GRAPH.Enum()
		return attr, nil
	case []*TensorProto:
		attr.Tensors, attr.Type = v, AttributeProto_TENSORS.Enum()
		return attr, nil
	case []*GraphProto:
		attr.Graphs, attr.Type = v, AttributeProto_GRAPHS.Enum()
		return attr, nil
	case string:
		attr.S, attr.Type = []byte(v), AttributeProto_STRING.Enum()
		return attr, nil
	case []byte:
		attr.S, attr.Type = append([]byte(nil), v...), AttributeProto_STRING.Enum()
		return attr, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		attr.F, attr.Type = proto.Float32(float32(rv.Float())), AttributeProto_FLOAT.Enum()
		return attr, nil
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, ok := toInt64(value)
		if !ok {
			return nil, errors.Errorf("value %v of attribute %q overflows int64", value, name)
		}
		attr.I, attr.Type = proto.Int64(i), AttributeProto_INT.Enum()
		return attr, nil
	case reflect.Slice, reflect.Array:
		return makeListAttribute(attr, rv)
	}
	return nil, errors.Errorf("unsupported type %T for attribute %q", value, name)
}

func makeListAttribute(attr *AttributeProto, rv reflect.Value) (*AttributeProto, error) {
	if rv.Len() == 0 {
		switch rv.Type().Elem().Kind() {
		case reflect.Float32, reflect.Float64:
			attr.Type = AttributeProto_FLOATS.Enum()
		case reflect.String, reflect.Slice:
			attr.Type = AttributeProto_STRINGS.Enum()
		case reflect.Interface:
			return nil, errors.Errorf("could not infer the type of attribute %q from an empty list", attr.GetName())
		default:
			attr.Type = AttributeProto_INTS.Enum()
		}
		return attr, nil
	}

	elems := make([]any, rv.Len())
	allInts, allNumbers, allStrings, allTensors, allGraphs := true, true, true, true, true
	for i := range elems {
		e := rv.Index(i).Interface()
		elems[i] = e
		if isUnsigned(e) {
			if _, ok := toInt64(e); !ok {
				return nil, errors.Errorf("element %d of attribute %q overflows int64: %v", i, attr.GetName(), e)
			}
		}
		_, isInt := toInt64(e)
		_, isNumber := toFloat64(e)
		_, isTensor := e.(*TensorProto)
		_, isGraph := e.(*GraphProto)
		allInts = allInts && isInt
		allNumbers = allNumbers && (isNumber || isInt)
		allStrings = allStrings && isStringLike(e)
		allTensors = allTensors && isTensor
		allGraphs = allGraphs && isGraph
	}

	switch {
	case allInts:
		attr.Type = AttributeProto_INTS.Enum()
		for _, e := range elems {
			i, _ := toInt64(e)
			attr.Ints = append(attr.Ints, i)
		}
	case allNumbers:
		attr.Type = AttributeProto_FLOATS.Enum()
		for _, e := range elems {
			f, ok := toFloat64(e)
			if !ok {
				i, _ := toInt64(e)
				f = float64(i)
			}
			attr.Floats = append(attr.Floats, float32(f))
		}
	case allStrings:
		attr.Type = AttributeProto_STRINGS.Enum()
		for _, e := range elems {
			attr.Strings = append(attr.Strings, stringBytes(e))
		}
	case allTensors:
		attr.Type = AttributeProto_TENSORS.Enum()
		for _, e := range elems {
			attr.Tensors = append(attr.Tensors, e.(*TensorProto))
		}
	case allGraphs:
		attr.Type = AttributeProto_GRAPHS.Enum()
		for _, e := range elems {
			attr.Graphs = append(attr.Graphs, e.(*GraphProto))
		}
	default:
		return nil, errors.Errorf("could not infer the type of attribute %q: list elements have mixed types", attr.GetName())
	}
	return attr, nil
}

// MakeTensor builds a TensorProto holding vals in the typed field matching dataType.
// vals may be a scalar, a slice or nested slices; it is flattened in row-major order and must
// hold exactly as many elements as dims describe. FLOAT16 and BFLOAT16 content is rounded to
// the nearest half-precision value and stored as bit patterns in int32_data.
func MakeTensor(name string, dataType TensorProto_DataType, dims []int64, vals any) (*TensorProto, error) {
	size := int64(1)
	for i, d := range dims {
		if d < 0 {
			return nil, errors.Errorf("dimension %d of tensor %q is negative: %d", i, name, d)
		}
		if d > 0 && size > math.MaxInt64/d {
			return nil, errors.Errorf("dims %v of tensor %q describe more than %d elements", dims, name, int64(math.MaxInt64))
		}
		size *= d
	}

	elems, err := flatten(vals, dataType == TensorProto_STRING)
	if err != nil {
		return nil, errors.Wrapf(err, "tensor %q", name)
	}
	if int64(len(elems)) != size {
		return nil, errors.Errorf("number of values (%d) does not match the size of tensor %q with dims %v (%d)",
			len(elems), name, dims, size)
	}

	t := &TensorProto{
		Name:     proto.String(name),
		DataType: proto.Int32(int32(dataType)),
		Dims:     append([]int64(nil), dims...),
	}
	for i, e := range elems {
		switch dataType {
		case TensorProto_FLOAT:
			f, ok := numberAsFloat(e)
			if !ok {
				return nil, elementError(name, dataType, i, e)
			}
			t.FloatData = append(t.FloatData, float32(f))
		case TensorProto_DOUBLE:
			f, ok := numberAsFloat(e)
			if !ok {
				return nil, elementError(name, dataType, i, e)
			}
			t.DoubleData = append(t.DoubleData, f)
		case TensorProto_FLOAT16:
			f, ok := numberAsFloat(e)
			if !ok {
				return nil, elementError(name, dataType, i, e)
			}
			t.Int32Data = append(t.Int32Data, int32(float16.Fromfloat32(float32(f)).Bits()))
		case TensorProto_BFLOAT16:
			f, ok := numberAsFloat(e)
			if !ok {
				return nil, elementError(name, dataType, i, e)
			}
			t.Int32Data = append(t.Int32Data, int32(BFloat16Bits(float32(f))))
		case TensorProto_INT64:
			v, ok := toInt64(e)
			if !ok {
				return nil, elementError(name, dataType, i, e)
			}
			t.Int64Data = append(t.Int64Data, v)
		case TensorProto_INT32, TensorProto_INT16, TensorProto_INT8,
			TensorProto_UINT16, TensorProto_UINT8, TensorProto_BOOL:
			v, ok := toInt64(e)
			if !ok {
				return nil, elementError(name, dataType, i, e)
			}
			t.Int32Data = append(t.Int32Data, int32(v))
		case TensorProto_UINT32, TensorProto_UINT64:
			v, ok := toUint64(e)
			if !ok || (dataType == TensorProto_UINT32 && v > math.MaxUint32) {
				return nil, elementError(name, dataType, i, e)
			}
			t.Uint64Data = append(t.Uint64Data, v)
		case TensorProto_STRING:
			if !isStringLike(e) {
				return nil, elementError(name, dataType, i, e)
			}
			t.StringData = append(t.StringData, stringBytes(e))
		default:
			return nil, errors.Errorf("unsupported data type %s for tensor %q", dataType, name)
		}
	}
	return t, nil
}

// BFloat16Bits rounds f to the nearest bfloat16, ties to even, and returns its bit pattern.
// NaN maps to the canonical quiet NaN 0x7fc0.
func BFloat16Bits(f float32) uint16 {
	if math.IsNaN(float64(f)) {
		return 0x7fc0
	}
	b := math.Float32bits(f)
	b += 0x7fff + (b>>16)&1
	return uint16(b >> 16)
}

func elementError(name string, dataType TensorProto_DataType, i int, e any) error {
	return errors.Errorf("element %d of tensor %q has type %T, which cannot be stored as %s", i, name, e, dataType)
}

// MakeTensorType returns a tensor TypeProto. A nil shape leaves the rank unknown.
func MakeTensorType(elemType TensorProto_DataType, shape *TensorShapeProto) *TypeProto {
	return &TypeProto{Value: &TypeProto_TensorType{TensorType: &TypeProto_Tensor{
		ElemType: proto.Int32(int32(elemType)),
		Shape:    shape,
	}}}
}

// DimValue is a fixed dimension.
func DimValue(v int64) *TensorShapeProto_Dimension {
	return &TensorShapeProto_Dimension{Value: &TensorShapeProto_Dimension_DimValue{DimValue: v}}
}

// DimParam is a symbolic dimension.
func DimParam(p string) *TensorShapeProto_Dimension {
	return &TensorShapeProto_Dimension{Value: &TensorShapeProto_Dimension_DimParam{DimParam: p}}
}

// HasDimValue reports whether d is a fixed dimension. An unknown dimension carries neither a
// value nor a parameter.
func HasDimValue(d *TensorShapeProto_Dimension) bool {
	_, ok := d.GetValue().(*TensorShapeProto_Dimension_DimValue)
	return ok
}

// MakeValueInfo describes a named value.
func MakeValueInfo(name string, typ *TypeProto, docString string) *ValueInfoProto {
	return &ValueInfoProto{Name: proto.String(name), Type: typ, DocString: optString(docString)}
}

// MakeGraph assembles a graph from its parts.
func MakeGraph(nodes []*NodeProto, name string, inputs, outputs []*ValueInfoProto,
	initializers []*TensorProto, valueInfo []*ValueInfoProto, docString string,
) *GraphProto {
	return &GraphProto{
		Node:        nodes,
		Name:        proto.String(name),
		Initializer: initializers,
		DocString:   optString(docString),
		Input:       inputs,
		Output:      outputs,
		ValueInfo:   valueInfo,
	}
}

// MakeOperatorSetID names one opset import.
func MakeOperatorSetID(domain string, version int64) *OperatorSetIdProto {
	return &OperatorSetIdProto{Domain: proto.String(domain), Version: proto.Int64(version)}
}

// MakeModel wraps a graph into a model at the newest IR version.
func MakeModel(graph *GraphProto, opsetImports []*OperatorSetIdProto) *ModelProto {
	return &ModelProto{IrVersion: proto.Int64(IRVersion), Graph: graph, OpsetImport: opsetImports}
}

// optString leaves empty strings unset.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return proto.String(s)
}

// flatten walks vals depth-first. []byte is kept whole when bytesAsScalar is set.
func flatten(vals any, bytesAsScalar bool) ([]any, error) {
	var out []any
	var visit func(v any) error
	visit = func(v any) error {
		if v == nil {
			return errors.New("nil value in tensor content")
		}
		if _, ok := v.([]byte); ok && bytesAsScalar {
			out = append(out, v)
			return nil
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				if err := visit(rv.Index(i).Interface()); err != nil {
					return err
				}
			}
			return nil
		}
		out = append(out, v)
		return nil
	}
	if err := visit(vals); err != nil {
		return nil, err
	}
	return out, nil
}

func toInt64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toUint64(v any) (uint64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	}
	i, ok := toInt64(v)
	if !ok || i < 0 {
		return 0, false
	}
	return uint64(i), true
}

func isUnsigned(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toFloat64(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func numberAsFloat(v any) (float64, bool) {
	if f, ok := toFloat64(v); ok {
		return f, true
	}
	if _, isBool := v.(bool); isBool {
		return 0, false
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

func isStringLike(v any) bool {
	switch v.(type) {
	case string, []byte:
		return true
	}
	return false
}

func stringBytes(v any) []byte {
	switch s := v.(type) {
	case string:
		return []byte(s)
	case []byte:
		return append([]byte(nil), s...)
	}
	return nil
}
