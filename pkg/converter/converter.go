// Package converter turns assembled ONNX models into the ZMF format.
package converter

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zerfoo/onnxcommon/internal/onnx"
	"github.com/zerfoo/zmf"
)

// Metadata written into converted models when the ONNX model names no producer.
const (
	DefaultProducerName    = "onnxcommon"
	DefaultProducerVersion = "0.1.0"
)

// ToZMF converts an ONNX model to the ZMF format.
func ToZMF(model *onnx.ModelProto) (*zmf.Model, error) {
	return ToZMFWithPath(model, "")
}

// ToZMFWithPath converts an ONNX model whose initializers may live in external data files
// next to modelPath.
func ToZMFWithPath(model *onnx.ModelProto, modelPath string) (*zmf.Model, error) {
	onnxGraph := model.GetGraph()
	if onnxGraph == nil {
		return nil, fmt.Errorf("model graph is nil")
	}

	initializers := make(map[string]*onnx.TensorProto)
	for _, t := range onnxGraph.GetInitializer() {
		initializers[t.GetName()] = t
	}

	producer, version := model.GetProducerName(), model.GetProducerVersion()
	if producer == "" {
		producer, version = DefaultProducerName, DefaultProducerVersion
	}

	zmfModel := &zmf.Model{
		Graph: &zmf.Graph{
			Nodes:      make([]*zmf.Node, 0, len(onnxGraph.GetNode())),
			Parameters: make(map[string]*zmf.Tensor),
			Inputs:     convertValueInfos(onnxGraph.GetInput()),
			Outputs:    convertValueInfos(onnxGraph.GetOutput()),
		},
		Metadata: &zmf.Metadata{
			ProducerName:    producer,
			ProducerVersion: version,
			OpsetVersion:    defaultOpset(model),
		},
	}

	for _, onnxNode := range onnxGraph.GetNode() {
		zmfNode, err := convertNode(onnxNode, initializers)
		if err != nil {
			return nil, fmt.Errorf("failed to convert node '%s': %w", onnxNode.GetName(), err)
		}
		zmfModel.Graph.Nodes = append(zmfModel.Graph.Nodes, zmfNode)
	}

	for name, t := range initializers {
		switch onnx.TensorProto_DataType(t.GetDataType()) {
		case onnx.TensorProto_FLOAT, onnx.TensorProto_FLOAT16, onnx.TensorProto_BFLOAT16, onnx.TensorProto_DOUBLE:
			param, err := convertTensor(t, modelPath)
			if err != nil {
				return nil, fmt.Errorf("failed to convert float initializer '%s': %w", name, err)
			}
			zmfModel.Graph.Parameters[name] = param
		}
	}

	return zmfModel, nil
}

// defaultOpset returns the version imported for the default ONNX domain.
func defaultOpset(model *onnx.ModelProto) int64 {
	for _, op := range model.GetOpsetImport() {
		if op.GetDomain() == "" || op.GetDomain() == "ai.onnx" {
			return op.GetVersion()
		}
	}
	return 0
}

// operand inputs that ZMF expects as attributes, by operator.
var promotedInputs = map[string]struct {
	index int
	attr  string
}{
	"ReduceSum": {1, "axes"},
	"Transpose": {1, "perm"},
	"Reshape":   {1, "shape"},
}

// convertNode converts an ONNX node, turning constant integer inputs into attributes.
func convertNode(onnxNode *onnx.NodeProto, initializers map[string]*onnx.TensorProto) (*zmf.Node, error) {
	zmfNode := &zmf.Node{
		Name:       onnxNode.GetName(),
		OpType:     onnxNode.GetOpType(),
		Outputs:    onnxNode.GetOutput(),
		Attributes: make(map[string]*zmf.Attribute),
	}

	for _, onnxAttr := range onnxNode.GetAttribute() {
		if zmfAttr := convertAttribute(onnxAttr); zmfAttr != nil {
			zmfNode.Attributes[onnxAttr.GetName()] = zmfAttr
		}
	}

	processed := make(map[string]bool)
	if p, ok := promotedInputs[onnxNode.GetOpType()]; ok && len(onnxNode.GetInput()) > p.index {
		name := onnxNode.GetInput()[p.index]
		if _, set := zmfNode.Attributes[p.attr]; !set {
			if init, ok := initializers[name]; ok {
				if ints, err := int64Data(init); err == nil {
					zmfNode.Attributes[p.attr] = intsAttribute(ints)
					processed[name] = true
				}
			}
		}
	}

	for _, name := range onnxNode.GetInput() {
		if processed[name] {
			continue
		}
		init, ok := initializers[name]
		if !ok {
			zmfNode.Inputs = append(zmfNode.Inputs, name)
			continue
		}
		switch onnx.TensorProto_DataType(init.GetDataType()) {
		case onnx.TensorProto_INT64, onnx.TensorProto_INT32:
			ints, err := int64Data(init)
			if err != nil {
				return nil, fmt.Errorf("failed to get data for constant '%s': %w", name, err)
			}
			zmfNode.Attributes[name] = intsAttribute(ints)
		default:
			zmfNode.Inputs = append(zmfNode.Inputs, name)
		}
	}

	return zmfNode, nil
}

func intsAttribute(v []int64) *zmf.Attribute {
	return &zmf.Attribute{Value: &zmf.Attribute_Ints{Ints: &zmf.Ints{Val: v}}}
}

// convertAttribute returns nil for attribute kinds ZMF cannot represent.
func convertAttribute(a *onnx.AttributeProto) *zmf.Attribute {
	switch a.GetType() {
	case onnx.AttributeProto_FLOAT:
		return &zmf.Attribute{Value: &zmf.Attribute_F{F: a.GetF()}}
	case onnx.AttributeProto_INT:
		return &zmf.Attribute{Value: &zmf.Attribute_I{I: a.GetI()}}
	case onnx.AttributeProto_STRING:
		return &zmf.Attribute{Value: &zmf.Attribute_S{S: string(a.GetS())}}
	case onnx.AttributeProto_FLOATS:
		return &zmf.Attribute{Value: &zmf.Attribute_Floats{Floats: &zmf.Floats{Val: a.GetFloats()}}}
	case onnx.AttributeProto_INTS:
		return intsAttribute(a.GetInts())
	case onnx.AttributeProto_STRINGS:
		vals := make([]string, len(a.GetStrings()))
		for i, s := range a.GetStrings() {
			vals[i] = string(s)
		}
		return &zmf.Attribute{Value: &zmf.Attribute_Strings{Strings: &zmf.Strings{Val: vals}}}
	}
	return nil
}

func convertTensor(t *onnx.TensorProto, modelPath string) (*zmf.Tensor, error) {
	zmfTensor := &zmf.Tensor{Shape: t.GetDims()}
	switch onnx.TensorProto_DataType(t.GetDataType()) {
	case onnx.TensorProto_FLOAT:
		zmfTensor.Dtype = zmf.Tensor_FLOAT32
	case onnx.TensorProto_FLOAT16:
		zmfTensor.Dtype = zmf.Tensor_FLOAT16
	case onnx.TensorProto_BFLOAT16:
		zmfTensor.Dtype = zmf.Tensor_BFLOAT16
	case onnx.TensorProto_INT32:
		zmfTensor.Dtype = zmf.Tensor_INT32
	case onnx.TensorProto_INT64:
		zmfTensor.Dtype = zmf.Tensor_INT64
	case onnx.TensorProto_DOUBLE:
		zmfTensor.Dtype = zmf.Tensor_FLOAT64
	default:
		return nil, fmt.Errorf("unsupported tensor data type: %s", onnx.TensorProto_DataType(t.GetDataType()))
	}

	switch {
	case t.GetDataLocation() == onnx.TensorProto_EXTERNAL || len(t.GetExternalData()) > 0:
		data, err := loadExternalData(t, modelPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load external data: %w", err)
		}
		zmfTensor.Data = data
	case len(t.GetRawData()) > 0:
		zmfTensor.Data = t.GetRawData()
	default:
		zmfTensor.Data = typedBytes(t)
	}
	return zmfTensor, nil
}

// typedBytes encodes the typed payload fields as little-endian raw data. FLOAT16 and BFLOAT16
// values are stored as their bit patterns in int32_data.
func typedBytes(t *onnx.TensorProto) []byte {
	var out []byte
	switch onnx.TensorProto_DataType(t.GetDataType()) {
	case onnx.TensorProto_FLOAT:
		for _, v := range t.GetFloatData() {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
		}
	case onnx.TensorProto_DOUBLE:
		for _, v := range t.GetDoubleData() {
			out = binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
		}
	case onnx.TensorProto_FLOAT16, onnx.TensorProto_BFLOAT16:
		for _, v := range t.GetInt32Data() {
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
		}
	case onnx.TensorProto_INT32:
		for _, v := range t.GetInt32Data() {
			out = binary.LittleEndian.AppendUint32(out, uint32(v))
		}
	case onnx.TensorProto_INT64:
		for _, v := range t.GetInt64Data() {
			out = binary.LittleEndian.AppendUint64(out, uint64(v))
		}
	}
	return out
}

// loadExternalData reads the byte range described by the tensor's external_data entries.
func loadExternalData(t *onnx.TensorProto, modelPath string) ([]byte, error) {
	var location string
	var offset, length int64
	for _, entry := range t.GetExternalData() {
		var err error
		switch entry.GetKey() {
		case "location":
			location = entry.GetValue()
		case "offset":
			if entry.GetValue() != "" {
				if offset, err = strconv.ParseInt(entry.GetValue(), 10, 64); err != nil {
					return nil, fmt.Errorf("invalid offset value: %s", entry.GetValue())
				}
			}
		case "length":
			if entry.GetValue() != "" {
				if length, err = strconv.ParseInt(entry.GetValue(), 10, 64); err != nil {
					return nil, fmt.Errorf("invalid length value: %s", entry.GetValue())
				}
			}
		}
	}
	if location == "" {
		return nil, fmt.Errorf("external data location not specified")
	}

	path := location
	if !filepath.IsAbs(location) {
		path = filepath.Join(filepath.Dir(modelPath), location)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open external data file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if offset > 0 {
		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to seek to offset %d: %w", offset, err)
		}
	}
	if length > 0 {
		data := make([]byte, length)
		if _, err := io.ReadFull(f, data); err != nil {
			return nil, fmt.Errorf("failed to read %d bytes from external file: %w", length, err)
		}
		return data, nil
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read external data file: %w", err)
	}
	return data, nil
}

func int64Data(t *onnx.TensorProto) ([]int64, error) {
	dt := onnx.TensorProto_DataType(t.GetDataType())
	if dt != onnx.TensorProto_INT64 && dt != onnx.TensorProto_INT32 {
		return nil, fmt.Errorf("tensor is not of type INT64 or INT32, but %s", dt)
	}
	if len(t.GetInt64Data()) > 0 {
		return t.GetInt64Data(), nil
	}
	if len(t.GetInt32Data()) > 0 {
		data := make([]int64, len(t.GetInt32Data()))
		for i, v := range t.GetInt32Data() {
			data[i] = int64(v)
		}
		return data, nil
	}

	raw := t.GetRawData()
	width := 8
	if dt == onnx.TensorProto_INT32 {
		width = 4
	}
	if len(raw)%width != 0 {
		return nil, fmt.Errorf("raw_data length %d is not a multiple of %d for %s", len(raw), width, dt)
	}
	data := make([]int64, len(raw)/width)
	for i := range data {
		chunk := raw[i*width : (i+1)*width]
		if width == 8 {
			data[i] = int64(binary.LittleEndian.Uint64(chunk))
		} else {
			data[i] = int64(int32(binary.LittleEndian.Uint32(chunk)))
		}
	}
	return data, nil
}

// convertValueInfos maps symbolic or unknown dimensions to -1.
func convertValueInfos(infos []*onnx.ValueInfoProto) []*zmf.ValueInfo {
	out := make([]*zmf.ValueInfo, len(infos))
	for i, info := range infos {
		dims := info.GetType().GetTensorType().GetShape().GetDim()
		shape := make([]int64, len(dims))
		for j, d := range dims {
			if onnx.HasDimValue(d) {
				shape[j] = d.GetDimValue()
			} else {
				shape[j] = -1
			}
		}
		out[i] = &zmf.ValueInfo{Name: info.GetName(), Shape: shape}
	}
	return out
}
