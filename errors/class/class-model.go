package class

// MjrModel - major that classifies errors related with the model definitions
// and their records.
var MjrModel Major

func registerModelClasses() {
	MjrModel = MustRegisterMajor("Model")

	registerModelMapping()
	registerModelValue()
}

/**

Model Mapping

*/
var (
	// MnrModelMapping is the 'MjrModel' minor error classification
	// for the model map registration issues.
	MnrModelMapping Minor

	// ModelNotMapped is the 'MjrModel', 'MnrModelMapping' error classification
	// when the model is not registered within the model map.
	ModelNotMapped Class

	// ModelAlreadyRegistered is the 'MjrModel', 'MnrModelMapping' error classification
	// when the model with provided name or collection is already registered.
	ModelAlreadyRegistered Class

	// ModelDefinition is the 'MjrModel', 'MnrModelMapping' error classification
	// for invalid model definitions.
	ModelDefinition Class
)

func registerModelMapping() {
	MnrModelMapping = MjrModel.MustRegisterMinor("Mapping", "model map registration issues")

	ModelNotMapped = MnrModelMapping.MustRegisterIndex("Not Mapped", "model is not registered within the model map").Class()
	ModelAlreadyRegistered = MnrModelMapping.MustRegisterIndex("Already Registered", "model is already registered").Class()
	ModelDefinition = MnrModelMapping.MustRegisterIndex("Definition", "invalid model definition").Class()
}

/**

Model Value

*/
var (
	// MnrModelValue is the 'MjrModel' minor error classification
	// for the record payload value issues.
	MnrModelValue Minor

	// ModelValueInvalid is the 'MjrModel', 'MnrModelValue' error classification
	// when the raw payload value has an unexpected type.
	ModelValueInvalid Class
)

func registerModelValue() {
	MnrModelValue = MjrModel.MustRegisterMinor("Value", "record payload value issues")

	ModelValueInvalid = MnrModelValue.MustRegisterIndex("Invalid", "unexpected raw payload value type").Class()
}
