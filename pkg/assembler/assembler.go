// Package assembler turns a filled ModelComponentContainer into an ONNX ModelProto.
package assembler

import (
	"errors"
	"fmt"
	"sort"

	"google.golang.org/protobuf/proto"

	"github.com/zerfoo/onnxcommon/internal/onnx"
	"github.com/zerfoo/onnxcommon/pkg/container"
)

// Options control the model-level fields that the container does not carry.
type Options struct {
	GraphName       string
	ProducerName    string
	ProducerVersion string
	Domain          string
	ModelVersion    int64
	DocString       string
	Metadata        map[string]string
}

// Option mutates Options.
type Option func(*Options)

// WithGraphName names the graph. The default is "graph".
func WithGraphName(name string) Option {
	return func(o *Options) { o.GraphName = name }
}

// WithProducer sets producer_name and producer_version.
func WithProducer(name, version string) Option {
	return func(o *Options) {
		o.ProducerName = name
		o.ProducerVersion = version
	}
}

// WithDomain sets the model domain, for example "ai.onnx.ml".
func WithDomain(domain string) Option {
	return func(o *Options) { o.Domain = domain }
}

// WithModelVersion sets model_version.
func WithModelVersion(v int64) Option {
	return func(o *Options) { o.ModelVersion = v }
}

// WithDocString sets the model doc string.
func WithDocString(doc string) Option {
	return func(o *Options) { o.DocString = doc }
}

// WithMetadata adds a metadata_props entry.
func WithMetadata(key, value string) Option {
	return func(o *Options) {
		if o.Metadata == nil {
			o.Metadata = make(map[string]string)
		}
		o.Metadata[key] = value
	}
}

// Build assembles the model. Each operator domain is imported once at the highest version any
// node requested; the default domain is always imported at the container's target opset.
func Build(c *container.ModelComponentContainer, opts ...Option) (*onnx.ModelProto, error) {
	if c == nil {
		return nil, errors.New("container is nil")
	}
	if c.TargetOpset() <= 0 {
		return nil, fmt.Errorf("target opset must be positive, got %d", c.TargetOpset())
	}

	o := Options{GraphName: "graph"}
	for _, opt := range opts {
		opt(&o)
	}

	graph := onnx.MakeGraph(c.Nodes(), o.GraphName, c.Inputs(), c.Outputs(), c.Initializers(), c.ValueInfo(), "")
	model := onnx.MakeModel(graph, OpsetImports(c))
	model.IrVersion = proto.Int64(onnx.IRVersionForOpset(c.TargetOpset()))
	model.ProducerName = optString(o.ProducerName)
	model.ProducerVersion = optString(o.ProducerVersion)
	model.Domain = optString(o.Domain)
	model.DocString = optString(o.DocString)
	if o.ModelVersion != 0 {
		model.ModelVersion = proto.Int64(o.ModelVersion)
	}

	keys := make([]string, 0, len(o.Metadata))
	for k := range o.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		model.MetadataProps = append(model.MetadataProps, &onnx.StringStringEntryProto{Key: proto.String(k), Value: proto.String(o.Metadata[k])})
	}
	return model, nil
}

// OpsetImports derives the opset_import list from the container's domain/version pairs.
// "ai.onnx" is folded into the default domain.
func OpsetImports(c *container.ModelComponentContainer) []*onnx.OperatorSetIdProto {
	versions := map[string]int64{"": c.TargetOpset()}
	for _, p := range c.NodeDomainVersionPairs() {
		domain := p.Domain
		if domain == "ai.onnx" {
			domain = ""
		}
		if domain == "" {
			continue
		}
		if v, ok := versions[domain]; !ok || p.Version > v {
			versions[domain] = p.Version
		}
	}

	domains := make([]string, 0, len(versions))
	for d := range versions {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	imports := make([]*onnx.OperatorSetIdProto, len(domains))
	for i, d := range domains {
		imports[i] = onnx.MakeOperatorSetID(d, versions[d])
	}
	return imports
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return proto.String(s)
}
