package class

// MjrCommon - major that classifies common, cross-package errors.
var MjrCommon Major

func registerCommonClasses() {
	MjrCommon = MustRegisterMajor("Common")

	registerCommonLogger()
	registerCommonInternal()
}

/**

Common Logger

*/
var (
	// MnrCommonLogger is the 'MjrCommon' minor classification
	// for the logger related issues.
	MnrCommonLogger Minor

	// CommonLoggerUnknownLevel is the 'MjrCommon', 'MnrCommonLogger' error classification
	// for unknown logging level.
	CommonLoggerUnknownLevel Class

	// CommonLoggerNotImplemented is the 'MjrCommon', 'MnrCommonLogger' error classification
	// when the logger doesn't implement required interface.
	CommonLoggerNotImplemented Class
)

func registerCommonLogger() {
	MnrCommonLogger = MjrCommon.MustRegisterMinor("Logger", "logger related issues")

	CommonLoggerUnknownLevel = MnrCommonLogger.MustRegisterIndex("Unknown Level", "provided unknown logging level").Class()
	CommonLoggerNotImplemented = MnrCommonLogger.MustRegisterIndex("Not Implemented", "logger doesn't implement required interface").Class()
}

/**

Common Internal

*/
var (
	// MnrCommonInternal is the 'MjrCommon' minor classification
	// for the internal issues.
	MnrCommonInternal Minor

	// CommonInternal is the 'MjrCommon', 'MnrCommonInternal' error classification
	// for internal logic issues.
	CommonInternal Class
)

func registerCommonInternal() {
	MnrCommonInternal = MjrCommon.MustRegisterMinor("Internal", "internal issues")

	CommonInternal = MnrCommonInternal.MustRegisterIndex("Logic", "internal logic failure").Class()
}
