package class

// MjrPath - major that classifies the resource path resolution errors.
var MjrPath Major

func registerPathClasses() {
	MjrPath = MustRegisterMajor("Path")

	registerPathResolve()
}

/**

Path Resolve

*/
var (
	// MnrPathResolve is the 'MjrPath' minor error classification
	// for the path template resolution issues.
	MnrPathResolve Minor

	// PathMissingParam is the 'MjrPath', 'MnrPathResolve' error classification
	// when a required path parameter is missing or blank.
	PathMissingParam Class

	// PathTemplateEmpty is the 'MjrPath', 'MnrPathResolve' error classification
	// when the path template is empty.
	PathTemplateEmpty Class
)

func registerPathResolve() {
	MnrPathResolve = MjrPath.MustRegisterMinor("Resolve", "path template resolution issues")

	PathMissingParam = MnrPathResolve.MustRegisterIndex("Missing Param", "required path parameter is missing or blank").Class()
	PathTemplateEmpty = MnrPathResolve.MustRegisterIndex("Template Empty", "path template is empty").Class()
}
