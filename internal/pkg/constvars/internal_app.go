package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "OUTCOMES_SVC_"
)

const (
	AppEnvironmentProduction  = "production"
	AppEnvironmentDevelopment = "development"
)

const (
	ResourceJoints      = "joints"
	ResourceInstruments = "instruments"
	ResourceAssessments = "assessments"
)

// Maximum time a handler waits for a usecase call.
const (
	HandlerTimeoutInSeconds = 10
)
