package class

// MjrRelation - major that classifies errors related with the relationship
// declarations and their resolution.
var MjrRelation Major

func registerRelationClasses() {
	MjrRelation = MustRegisterMajor("Relation")

	registerRelationDefinition()
	registerRelationValue()
}

/**

Relation Definition

*/
var (
	// MnrRelationDefinition is the 'MjrRelation' minor error classification
	// for the relationship declaration issues.
	MnrRelationDefinition Minor

	// RelationNotFound is the 'MjrRelation', 'MnrRelationDefinition' error classification
	// when the relationship with provided name is not declared.
	RelationNotFound Class

	// RelationRedeclared is the 'MjrRelation', 'MnrRelationDefinition' error classification
	// when the relationship with provided name is already declared for the model.
	RelationRedeclared Class

	// RelationKindUnknown is the 'MjrRelation', 'MnrRelationDefinition' error classification
	// for an unknown relationship kind.
	RelationKindUnknown Class
)

func registerRelationDefinition() {
	MnrRelationDefinition = MjrRelation.MustRegisterMinor("Definition", "relationship declaration issues")

	RelationNotFound = MnrRelationDefinition.MustRegisterIndex("Not Found", "relationship is not declared").Class()
	RelationRedeclared = MnrRelationDefinition.MustRegisterIndex("Redeclared", "relationship is already declared").Class()
	RelationKindUnknown = MnrRelationDefinition.MustRegisterIndex("Kind Unknown", "unknown relationship kind").Class()
}

/**

Relation Value

*/
var (
	// MnrRelationValue is the 'MjrRelation' minor error classification
	// for the relationship value issues.
	MnrRelationValue Minor

	// RelationValueInvalid is the 'MjrRelation', 'MnrRelationValue' error classification
	// when the embedded relationship payload has an unexpected type.
	RelationValueInvalid Class

	// RelationKindMismatch is the 'MjrRelation', 'MnrRelationValue' error classification
	// when the relationship is accessed with a mismatched kind.
	RelationKindMismatch Class
)

func registerRelationValue() {
	MnrRelationValue = MjrRelation.MustRegisterMinor("Value", "relationship value issues")

	RelationValueInvalid = MnrRelationValue.MustRegisterIndex("Invalid", "unexpected embedded relationship payload").Class()
	RelationKindMismatch = MnrRelationValue.MustRegisterIndex("Kind Mismatch", "relationship accessed with mismatched kind").Class()
}
