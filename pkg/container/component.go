// Package container collects the pieces of an ONNX graph while a converter walks a trained
// model: graph inputs and outputs, initializers, intermediate value infos, nodes, and the
// operator-set versions the nodes depend on.
//
// Containers are plain aggregates. They are not safe for concurrent use.
package container

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"google.golang.org/protobuf/proto"

	"github.com/zerfoo/onnxcommon/internal/onnx"
	"github.com/zerfoo/onnxcommon/pkg/datatypes"
)

// Variable is a graph value that can be declared as an input, output or value info.
type Variable interface {
	FullName() string
	Type() datatypes.DataType
}

// DomainVersion identifies an operator set referenced by a node.
type DomainVersion struct {
	Domain  string
	Version int64
}

// ModelComponentContainer accumulates everything needed to build one ONNX GraphProto at a fixed
// target opset. Entries are only ever appended; the order of inputs and outputs is the order
// of the final graph signature.
type ModelComponentContainer struct {
	// EnableOptimizer is read by the caller after conversion; the container ignores it.
	EnableOptimizer bool

	targetOpset  int64
	inputs       []*onnx.ValueInfoProto
	outputs      []*onnx.ValueInfoProto
	initializers []*onnx.TensorProto
	valueInfo    []*onnx.ValueInfoProto
	nodes        []*onnx.NodeProto
	domains      map[DomainVersion]struct{}
}

// NewModelComponentContainer creates an empty container for targetOpset, for example 7 for
// ONNX 1.2 or 8 for ONNX 1.3.
func NewModelComponentContainer(targetOpset int64) *ModelComponentContainer {
	return &ModelComponentContainer{
		EnableOptimizer: true,
		targetOpset:     targetOpset,
		domains:         make(map[DomainVersion]struct{}),
	}
}

// TargetOpset returns the default-domain opset the model is being built for.
func (c *ModelComponentContainer) TargetOpset() int64 { return c.targetOpset }

// The accessors below return the container's own slices. Callers must not modify them.

func (c *ModelComponentContainer) Inputs() []*onnx.ValueInfoProto { return c.inputs }

func (c *ModelComponentContainer) Outputs() []*onnx.ValueInfoProto { return c.outputs }

func (c *ModelComponentContainer) Initializers() []*onnx.TensorProto { return c.initializers }

func (c *ModelComponentContainer) ValueInfo() []*onnx.ValueInfoProto { return c.valueInfo }

func (c *ModelComponentContainer) Nodes() []*onnx.NodeProto { return c.nodes }

// NodeDomainVersionPairs returns the distinct (domain, version) pairs used by added nodes,
// sorted by domain then version.
func (c *ModelComponentContainer) NodeDomainVersionPairs() []DomainVersion {
	pairs := make([]DomainVersion, 0, len(c.domains))
	for p := range c.domains {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Domain != pairs[j].Domain {
			return pairs[i].Domain < pairs[j].Domain
		}
		return pairs[i].Version < pairs[j].Version
	})
	return pairs
}

// HasDomainVersion reports whether a node with this domain and version was added.
func (c *ModelComponentContainer) HasDomainVersion(domain string, version int64) bool {
	_, ok := c.domains[DomainVersion{Domain: domain, Version: version}]
	return ok
}

func makeValueInfo(v Variable) (*onnx.ValueInfoProto, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: variable is nil", ErrInvalidArgument)
	}
	typ := v.Type()
	if typ == nil {
		return nil, fmt.Errorf("%w: variable %q has no type", ErrInvalidArgument, v.FullName())
	}
	return onnx.MakeValueInfo(v.FullName(), typ.ToOnnxType(), typ.DocString()), nil
}

// AddInput appends v to the graph inputs. Adding the same variable twice declares it twice.
func (c *ModelComponentContainer) AddInput(v Variable) error {
	vi, err := makeValueInfo(v)
	if err != nil {
		return err
	}
	c.inputs = append(c.inputs, vi)
	return nil
}

// AddOutput appends v to the graph outputs. Adding the same variable twice declares it twice.
func (c *ModelComponentContainer) AddOutput(v Variable) error {
	vi, err := makeValueInfo(v)
	if err != nil {
		return err
	}
	c.outputs = append(c.outputs, vi)
	return nil
}

// AddValueInfo records the type of an intermediate value.
func (c *ModelComponentContainer) AddValueInfo(v Variable) error {
	vi, err := makeValueInfo(v)
	if err != nil {
		return err
	}
	c.valueInfo = append(c.valueInfo, vi)
	return nil
}

// AddInitializer appends a constant tensor. content is the flattened tensor value. A negative
// entry in shape marks an unresolved dimension and is rejected. Initializer names must be
// unique in the final graph; the container does not check this.
func (c *ModelComponentContainer) AddInitializer(name string, elemType onnx.TensorProto_DataType, shape []int64, content any) error {
	for _, d := range shape {
		if d < 0 {
			return fmt.Errorf("%w: shape of initializer %q cannot contain an unresolved dimension: %v",
				ErrInvalidArgument, name, shape)
		}
	}
	tensor, err := onnx.MakeTensor(name, elemType, shape, content)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	c.initializers = append(c.initializers, tensor)
	return nil
}

type nodeConfig struct {
	domain    string
	version   int64
	name      string
	docString string
	attrs     []onnx.Attr
}

// NodeOption configures AddNode.
type NodeOption func(*nodeConfig)

// WithDomain sets the operator domain, for example "ai.onnx.ml". The default is "".
func WithDomain(domain string) NodeOption {
	return func(c *nodeConfig) { c.domain = domain }
}

// WithVersion sets the operator-set version of the operator. The default is 1.
func WithVersion(version int64) NodeOption {
	return func(c *nodeConfig) { c.version = version }
}

// WithName sets the node name. The default is empty.
func WithName(name string) NodeOption {
	return func(c *nodeConfig) { c.name = name }
}

// WithDocString sets the node's doc string.
func WithDocString(doc string) NodeOption {
	return func(c *nodeConfig) { c.docString = doc }
}

// WithAttribute adds an attribute. Supported values are numbers, strings, booleans, tensors,
// graphs and lists of those.
func WithAttribute(name string, value any) NodeOption {
	return func(c *nodeConfig) { c.attrs = append(c.attrs, onnx.Attr{Name: name, Value: value}) }
}

// WithAttributes adds attributes in the given order.
func WithAttributes(attrs ...onnx.Attr) NodeOption {
	return func(c *nodeConfig) { c.attrs = append(c.attrs, attrs...) }
}

// AddNode appends a node running opType. inputs and outputs are a single name, a []string, or
// a []any holding only strings. On error the container is left unchanged.
func (c *ModelComponentContainer) AddNode(opType string, inputs, outputs any, opts ...NodeOption) error {
	cfg := nodeConfig{version: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	in, err := names("inputs", inputs)
	if err != nil {
		return err
	}
	out, err := names("outputs", outputs)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(cfg.attrs))
	for _, a := range cfg.attrs {
		if a.Value == nil {
			return fmt.Errorf("%w: failed to create ONNX node, undefined attribute pair (%s, <nil>) found",
				ErrInvalidAttribute, a.Name)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: attribute %q is set more than once", ErrInvalidAttribute, a.Name)
		}
		seen[a.Name] = true
		if err := checkHomogeneous(a); err != nil {
			return err
		}
	}

	node, err := onnx.MakeNode(opType, in, out, cfg.attrs)
	if err != nil {
		return err
	}
	node.Domain = proto.String(cfg.domain)
	if cfg.name != "" {
		node.Name = proto.String(cfg.name)
	}
	if cfg.docString != "" {
		node.DocString = proto.String(cfg.docString)
	}

	c.domains[DomainVersion{Domain: cfg.domain, Version: cfg.version}] = struct{}{}
	c.nodes = append(c.nodes, node)
	return nil
}

func names(what string, v any) ([]string, error) {
	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case []string:
		return append([]string(nil), x...), nil
	case []any:
		return stringList(what, x)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return stringList(what, elems)
	}
	return nil, fmt.Errorf("%w: %s must be a string or a list of string but got %T", ErrInvalidArgument, what, v)
}

func stringList(what string, vals []any) ([]string, error) {
	out := make([]string, len(vals))
	for i, e := range vals {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a list of string but got [%s]", ErrInvalidArgument, what, typeList(vals))
		}
		out[i] = s
	}
	return out, nil
}

func typeList(vals []any) string {
	types := make([]string, len(vals))
	for i, v := range vals {
		types[i] = fmt.Sprintf("%T", v)
	}
	return strings.Join(types, ",")
}

type elemKind int

const (
	kindOther elemKind = iota
	kindInt
	kindFloat
	kindString
	kindTensor
	kindGraph
)

func kindOf(v any) elemKind {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, bool:
		return kindInt
	case float32, float64:
		return kindFloat
	case string, []byte:
		return kindString
	case *onnx.TensorProto:
		return kindTensor
	case *onnx.GraphProto:
		return kindGraph
	}
	return kindOther
}

// checkHomogeneous rejects a []any attribute whose elements cannot be stored as one ONNX list
// type. Integers and floats may be mixed; they are stored as floats.
func checkHomogeneous(a onnx.Attr) error {
	list, ok := a.Value.([]any)
	if !ok || len(list) < 2 {
		return nil
	}

	kinds := make(map[elemKind]bool)
	others := make(map[string]bool)
	for _, v := range list {
		k := kindOf(v)
		kinds[k] = true
		if k == kindOther {
			others[fmt.Sprintf("%T", v)] = true
		}
	}
	numeric := len(kinds) == 2 && kinds[kindInt] && kinds[kindFloat]
	if (len(kinds) == 1 && len(others) <= 1) || numeric {
		return nil
	}

	conflict := &TypeConflictError{Attribute: a.Name}
	index := make(map[string]int)
	for _, v := range list {
		typ := fmt.Sprintf("%T", v)
		i, ok := index[typ]
		if !ok {
			i = len(conflict.Groups)
			index[typ] = i
			conflict.Groups = append(conflict.Groups, TypeGroup{Type: typ})
		}
		conflict.Groups[i].Values = append(conflict.Groups[i].Values, v)
	}
	return conflict
}
