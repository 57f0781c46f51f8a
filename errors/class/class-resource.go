package class

// MjrResource - major that classifies errors related with the remote
// resource loaders.
var MjrResource Major

func registerResourceClasses() {
	MjrResource = MustRegisterMajor("Resource")

	registerResourceConnection()
	registerResourceResponse()
}

/**

Resource Connection

*/
var (
	// MnrResourceConnection is the 'MjrResource' minor error classification
	// for the loader connection issues.
	MnrResourceConnection Minor

	// ResourceNotDefined is the 'MjrResource', 'MnrResourceConnection' error classification
	// when no resource loader is defined for the model.
	ResourceNotDefined Class

	// ResourceURLInvalid is the 'MjrResource', 'MnrResourceConnection' error classification
	// for an invalid base resource URL.
	ResourceURLInvalid Class

	// ResourceConnectionFailed is the 'MjrResource', 'MnrResourceConnection' error classification
	// when the request to the remote resource fails.
	ResourceConnectionFailed Class
)

func registerResourceConnection() {
	MnrResourceConnection = MjrResource.MustRegisterMinor("Connection", "resource loader connection issues")

	ResourceNotDefined = MnrResourceConnection.MustRegisterIndex("Not Defined", "no resource loader defined for the model").Class()
	ResourceURLInvalid = MnrResourceConnection.MustRegisterIndex("URL Invalid", "invalid base resource url").Class()
	ResourceConnectionFailed = MnrResourceConnection.MustRegisterIndex("Connection Failed", "request to the remote resource failed").Class()
}

/**

Resource Response

*/
var (
	// MnrResourceResponse is the 'MjrResource' minor error classification
	// for the remote response issues.
	MnrResourceResponse Minor

	// ResourceStatus is the 'MjrResource', 'MnrResourceResponse' error classification
	// for unexpected response status codes.
	ResourceStatus Class

	// ResourceDecode is the 'MjrResource', 'MnrResourceResponse' error classification
	// when the response body can't be decoded.
	ResourceDecode Class
)

func registerResourceResponse() {
	MnrResourceResponse = MjrResource.MustRegisterMinor("Response", "remote response issues")

	ResourceStatus = MnrResourceResponse.MustRegisterIndex("Status", "unexpected response status code").Class()
	ResourceDecode = MnrResourceResponse.MustRegisterIndex("Decode", "response body decoding failed").Class()
}
