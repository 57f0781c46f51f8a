package class

// MjrConfig - major that classifies the configuration related errors.
var MjrConfig Major

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config")

	registerConfigRead()
	registerConfigValue()
}

/**

Config Read

*/
var (
	// MnrConfigRead is the 'MjrConfig' minor classification
	// for the config reading issues.
	MnrConfigRead Minor

	// ConfigReadFailed is the 'MjrConfig', 'MnrConfigRead' error classification
	// when reading the config file fails.
	ConfigReadFailed Class

	// ConfigUnmarshal is the 'MjrConfig', 'MnrConfigRead' error classification
	// when the config can't be unmarshaled into its structure.
	ConfigUnmarshal Class
)

func registerConfigRead() {
	MnrConfigRead = MjrConfig.MustRegisterMinor("Read", "reading the configuration issues")

	ConfigReadFailed = MnrConfigRead.MustRegisterIndex("Failed", "reading the config failed").Class()
	ConfigUnmarshal = MnrConfigRead.MustRegisterIndex("Unmarshal", "unmarshaling the config failed").Class()
}

/**

Config Value

*/
var (
	// MnrConfigValue is the 'MjrConfig' minor classification
	// for the config value issues.
	MnrConfigValue Minor

	// ConfigValueInvalid is the 'MjrConfig', 'MnrConfigValue' error classification
	// for invalid config values.
	ConfigValueInvalid Class

	// ConfigValueNamingConvention is the 'MjrConfig', 'MnrConfigValue' error classification
	// for an unsupported naming convention.
	ConfigValueNamingConvention Class

	// ConfigValueLogLevel is the 'MjrConfig', 'MnrConfigValue' error classification
	// for an unsupported logging level value.
	ConfigValueLogLevel Class
)

func registerConfigValue() {
	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "config value issues")

	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "invalid config value").Class()
	ConfigValueNamingConvention = MnrConfigValue.MustRegisterIndex("Naming Convention", "unsupported naming convention").Class()
	ConfigValueLogLevel = MnrConfigValue.MustRegisterIndex("Log Level", "unsupported logging level").Class()
}
