package container

import "github.com/zerfoo/onnxcommon/pkg/datatypes"

// RawModelContainer carries the trained model being converted and reports the names of its
// declared inputs and outputs, in declaration order.
type RawModelContainer interface {
	RawModel() any
	InputNames() []string
	OutputNames() []string
}

// RawVariable is a source-model variable. Variables are deduplicated by identity, so pointer
// types are the usual choice.
type RawVariable interface {
	comparable
	RawName() string
}

// Origin names the framework that trained a raw model.
type Origin int

const (
	OriginSklearn Origin = iota
	OriginLightGBM
	OriginXGBoost
)

func (o Origin) String() string {
	switch o {
	case OriginSklearn:
		return "sklearn"
	case OriginLightGBM:
		return "lightgbm"
	case OriginXGBoost:
		return "xgboost"
	}
	return "unknown"
}

// CommonSklearnModelContainer holds a model that does not declare its own inputs and
// outputs. The parser registers them as it discovers them; registration order becomes the
// final model's signature order.
type CommonSklearnModelContainer[V RawVariable] struct {
	rawModel any
	origin   Origin
	inputs   orderedSet[V]
	outputs  orderedSet[V]
}

var _ RawModelContainer = (*CommonSklearnModelContainer[*datatypes.Variable])(nil)

// NewCommonSklearnModelContainer wraps a trained scikit-learn model.
func NewCommonSklearnModelContainer[V RawVariable](model any) *CommonSklearnModelContainer[V] {
	return newRawContainer[V](model, OriginSklearn)
}

// NewLightGBMModelContainer wraps a trained LightGBM booster. It behaves like the
// scikit-learn container and only differs in Origin.
func NewLightGBMModelContainer[V RawVariable](model any) *CommonSklearnModelContainer[V] {
	return newRawContainer[V](model, OriginLightGBM)
}

// NewXGBoostModelContainer wraps a trained XGBoost booster.
func NewXGBoostModelContainer[V RawVariable](model any) *CommonSklearnModelContainer[V] {
	return newRawContainer[V](model, OriginXGBoost)
}

func newRawContainer[V RawVariable](model any, origin Origin) *CommonSklearnModelContainer[V] {
	return &CommonSklearnModelContainer[V]{
		rawModel: model,
		origin:   origin,
		inputs:   newOrderedSet[V](),
		outputs:  newOrderedSet[V](),
	}
}

func (c *CommonSklearnModelContainer[V]) RawModel() any { return c.rawModel }

func (c *CommonSklearnModelContainer[V]) Origin() Origin { return c.origin }

// AddInput registers v as a model input unless it is already registered.
func (c *CommonSklearnModelContainer[V]) AddInput(v V) { c.inputs.add(v) }

// AddOutput registers v as a model output unless it is already registered.
func (c *CommonSklearnModelContainer[V]) AddOutput(v V) { c.outputs.add(v) }

// InputNames returns the raw names of the registered inputs.
func (c *CommonSklearnModelContainer[V]) InputNames() []string { return c.inputs.rawNames() }

// OutputNames returns the raw names of the registered outputs.
func (c *CommonSklearnModelContainer[V]) OutputNames() []string { return c.outputs.rawNames() }

func (c *CommonSklearnModelContainer[V]) Inputs() []V {
	return append([]V(nil), c.inputs.items...)
}

func (c *CommonSklearnModelContainer[V]) Outputs() []V {
	return append([]V(nil), c.outputs.items...)
}

type orderedSet[V RawVariable] struct {
	items []V
	seen  map[V]struct{}
}

func newOrderedSet[V RawVariable]() orderedSet[V] {
	return orderedSet[V]{seen: make(map[V]struct{})}
}

func (s *orderedSet[V]) add(v V) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// rawNames is computed on every call so renamed variables are reflected.
func (s *orderedSet[V]) rawNames() []string {
	names := make([]string, len(s.items))
	for i, v := range s.items {
		names[i] = v.RawName()
	}
	return names
}
