package container

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zerfoo/onnxcommon/pkg/datatypes"
)

type fakeModel struct{ name string }

func TestCommonSklearnModelContainerDedup(t *testing.T) {
	model := &fakeModel{name: "pipeline"}
	c := NewCommonSklearnModelContainer[*datatypes.Variable](model)

	a := datatypes.NewVariable("a", "", datatypes.FloatTensorType())
	b := datatypes.NewVariable("b", "", datatypes.FloatTensorType())

	c.AddInput(a)
	c.AddInput(b)
	c.AddInput(a)
	assert.Equal(t, []string{"a", "b"}, c.InputNames())

	// Identity, not name, decides membership.
	aAgain := datatypes.NewVariable("a", "", datatypes.FloatTensorType())
	c.AddInput(aAgain)
	assert.Equal(t, []string{"a", "b", "a"}, c.InputNames())

	c.AddOutput(b)
	c.AddOutput(b)
	assert.Equal(t, []string{"b"}, c.OutputNames())
	assert.Equal(t, []*datatypes.Variable{b}, c.Outputs())

	assert.Same(t, model, c.RawModel())
	assert.Equal(t, OriginSklearn, c.Origin())
}

func TestCommonSklearnModelContainerEmpty(t *testing.T) {
	c := NewCommonSklearnModelContainer[*datatypes.Variable](nil)
	assert.Empty(t, c.InputNames())
	assert.Empty(t, c.OutputNames())
	assert.Empty(t, c.Inputs())
}

type renamable struct{ raw string }

func (r *renamable) RawName() string { return r.raw }

func TestInputNamesAreNotCached(t *testing.T) {
	c := NewCommonSklearnModelContainer[*renamable](nil)
	v := &renamable{raw: "before"}
	c.AddInput(v)
	assert.Equal(t, []string{"before"}, c.InputNames())

	v.raw = "after"
	assert.Equal(t, []string{"after"}, c.InputNames())
}

func TestBoostingContainers(t *testing.T) {
	var containers []RawModelContainer
	lgbm := NewLightGBMModelContainer[*datatypes.Variable]("booster")
	xgb := NewXGBoostModelContainer[*datatypes.Variable]("booster")
	containers = append(containers, lgbm, xgb)

	for _, c := range containers {
		assert.Equal(t, "booster", c.RawModel())
	}
	assert.Equal(t, "lightgbm", lgbm.Origin().String())
	assert.Equal(t, "xgboost", xgb.Origin().String())

	v := datatypes.NewVariable("x", "", datatypes.DoubleTensorType())
	lgbm.AddInput(v)
	lgbm.AddInput(v)
	assert.Equal(t, []string{"x"}, lgbm.InputNames())
}
