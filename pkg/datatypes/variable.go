package datatypes

// Variable is a named value discovered while parsing a source model. RawName is the name in
// the source model; FullName is the unique name used in the ONNX graph.
type Variable struct {
	rawName  string
	onnxName string
	typ      DataType
}

// NewVariable creates a variable. An empty onnxName reuses rawName.
func NewVariable(rawName, onnxName string, typ DataType) *Variable {
	if onnxName == "" {
		onnxName = rawName
	}
	return &Variable{rawName: rawName, onnxName: onnxName, typ: typ}
}

func (v *Variable) RawName() string { return v.rawName }

func (v *Variable) FullName() string { return v.onnxName }

func (v *Variable) Type() DataType { return v.typ }

func (v *Variable) String() string {
	return v.onnxName
}
