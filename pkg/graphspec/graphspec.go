// Package graphspec reads YAML descriptions of ONNX graphs and replays them into a
// ModelComponentContainer.
//
// A description looks like:
//
//	name: linear
//	target_opset: 15
//	inputs:
//	  - {name: X, type: float, shape: [N, 2]}
//	outputs:
//	  - {name: Y, type: float, shape: [N, 1]}
//	initializers:
//	  - {name: W, type: float, dims: [2, 1], values: [0.5, 2.0]}
//	nodes:
//	  - op_type: MatMul
//	    version: 13
//	    inputs: [X, W]
//	    outputs: [Y]
//
// Shape entries are integers (fixed), strings (symbolic) or null (unknown). Omitting shape
// leaves the rank unknown.
package graphspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zerfoo/onnxcommon/internal/onnx"
	"github.com/zerfoo/onnxcommon/pkg/container"
	"github.com/zerfoo/onnxcommon/pkg/datatypes"
)

// Spec is a decoded graph description.
type Spec struct {
	Name         string        `yaml:"name"`
	Doc          string        `yaml:"doc"`
	TargetOpset  int64         `yaml:"target_opset"`
	Inputs       []Value       `yaml:"inputs"`
	Outputs      []Value       `yaml:"outputs"`
	ValueInfo    []Value       `yaml:"value_info"`
	Initializers []Initializer `yaml:"initializers"`
	Nodes        []Node        `yaml:"nodes"`
}

// Value declares a typed graph value. OnnxName defaults to Name.
type Value struct {
	Name     string `yaml:"name"`
	OnnxName string `yaml:"onnx_name"`
	Type     string `yaml:"type"`
	Shape    []any  `yaml:"shape"`
	Doc      string `yaml:"doc"`
}

// Initializer declares a constant tensor. A null entry in Dims is kept so that Populate can
// reject it instead of silently lowering the rank.
type Initializer struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Dims   []*int64 `yaml:"dims"`
	Values []any    `yaml:"values"`
}

// Node declares one operator. Version is optional; when set, even to 0, it is recorded as
// the op's (domain, version) requirement.
type Node struct {
	OpType  string `yaml:"op_type"`
	Name    string `yaml:"name"`
	Domain  string `yaml:"domain"`
	Version *int64 `yaml:"version"`
	Doc     string `yaml:"doc"`
	// Inputs and Outputs accept a single name or a list.
	Inputs     any       `yaml:"inputs"`
	Outputs    any       `yaml:"outputs"`
	Attributes yaml.Node `yaml:"attributes"`
}

// Load reads a description from path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph spec: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML description.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	for i, n := range s.Nodes {
		if n.OpType == "" {
			return nil, fmt.Errorf("node %d: op_type is required", i)
		}
		if k := n.Attributes.Kind; k != 0 && k != yaml.MappingNode {
			return nil, fmt.Errorf("node %d (%s): attributes must be a mapping", i, n.OpType)
		}
	}
	return &s, nil
}

// Variable builds the datatypes variable described by v.
func (v Value) Variable() (*datatypes.Variable, error) {
	elem, err := datatypes.ElemTypeByName(v.Type)
	if err != nil {
		return nil, fmt.Errorf("value %q: %w", v.Name, err)
	}
	typ := &datatypes.TensorType{ElemType: elem, Doc: v.Doc}
	if v.Shape != nil {
		if typ.Shape, err = datatypes.Shape(v.Shape...); err != nil {
			return nil, fmt.Errorf("value %q: %w", v.Name, err)
		}
	}
	return datatypes.NewVariable(v.Name, v.OnnxName, typ), nil
}

// Attrs decodes the node's attributes in document order.
func (n Node) Attrs() ([]onnx.Attr, error) {
	content := n.Attributes.Content
	attrs := make([]onnx.Attr, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		var value any
		if err := content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", content[i].Value, err)
		}
		attrs = append(attrs, onnx.Attr{Name: content[i].Value, Value: value})
	}
	return attrs, nil
}

// Populate replays the description into c: inputs, outputs, value infos, initializers, then
// nodes. It stops at the first entry the container rejects.
func (s *Spec) Populate(c *container.ModelComponentContainer) error {
	declare := []struct {
		what   string
		values []Value
		add    func(container.Variable) error
	}{
		{"input", s.Inputs, c.AddInput},
		{"output", s.Outputs, c.AddOutput},
		{"value_info", s.ValueInfo, c.AddValueInfo},
	}
	for _, d := range declare {
		for _, v := range d.values {
			variable, err := v.Variable()
			if err != nil {
				return fmt.Errorf("%s: %w", d.what, err)
			}
			if err := d.add(variable); err != nil {
				return fmt.Errorf("%s %q: %w", d.what, v.Name, err)
			}
		}
	}

	for _, init := range s.Initializers {
		elem, err := datatypes.ElemTypeByName(init.Type)
		if err != nil {
			return fmt.Errorf("initializer %q: %w", init.Name, err)
		}
		dims, err := init.resolvedDims()
		if err != nil {
			return fmt.Errorf("initializer %q: %w", init.Name, err)
		}
		if err := c.AddInitializer(init.Name, elem, dims, init.Values); err != nil {
			return fmt.Errorf("initializer %q: %w", init.Name, err)
		}
	}

	for i, n := range s.Nodes {
		attrs, err := n.Attrs()
		if err != nil {
			return fmt.Errorf("node %d (%s): %w", i, n.OpType, err)
		}
		opts := []container.NodeOption{
			container.WithDomain(n.Domain),
			container.WithName(n.Name),
			container.WithDocString(n.Doc),
			container.WithAttributes(attrs...),
		}
		if n.Version != nil {
			opts = append(opts, container.WithVersion(*n.Version))
		}
		if err := c.AddNode(n.OpType, orEmpty(n.Inputs), orEmpty(n.Outputs), opts...); err != nil {
			return fmt.Errorf("node %d (%s): %w", i, n.OpType, err)
		}
	}
	return nil
}

func (init Initializer) resolvedDims() ([]int64, error) {
	dims := make([]int64, len(init.Dims))
	for i, d := range init.Dims {
		if d == nil {
			return nil, fmt.Errorf("%w: dimension %d is null, initializers need concrete dimensions",
				container.ErrInvalidArgument, i)
		}
		dims[i] = *d
	}
	return dims, nil
}

func orEmpty(names any) any {
	if names == nil {
		return []string{}
	}
	return names
}

// RawContainer registers the description's inputs and outputs in a raw-model container whose
// model is the Spec itself. Values sharing a name share one variable.
func (s *Spec) RawContainer() (*container.CommonSklearnModelContainer[*datatypes.Variable], error) {
	raw := container.NewCommonSklearnModelContainer[*datatypes.Variable](s)
	vars := make(map[string]*datatypes.Variable)
	lookup := func(v Value) (*datatypes.Variable, error) {
		if existing, ok := vars[v.Name]; ok {
			return existing, nil
		}
		variable, err := v.Variable()
		if err != nil {
			return nil, err
		}
		vars[v.Name] = variable
		return variable, nil
	}
	for _, v := range s.Inputs {
		variable, err := lookup(v)
		if err != nil {
			return nil, err
		}
		raw.AddInput(variable)
	}
	for _, v := range s.Outputs {
		variable, err := lookup(v)
		if err != nil {
			return nil, err
		}
		raw.AddOutput(variable)
	}
	return raw, nil
}
