package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s",
	"max":        "must be at most %s",
	"gte":        "must be greater than or equal to %s",
	"lte":        "must be less than or equal to %s",
	"oneof":      "must be one of: %s",
	"uuid4":      "must be a valid UUID",
	"birth_date": "must be a date in the format YYYY-MM-DD and not in the future",
	"sink_name":  "must be one of: webhook, rabbitmq, mongo, minio",
}

// Tags whose message carries the validator parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientJointNotFound                 = "joint not found"
	ErrClientInstrumentNotFound            = "instrument not found for this joint"
	ErrClientAssessmentNotFound            = "assessment not found or expired"
	ErrClientInvalidAnswer                 = "answer does not match the current question or its options"
	ErrClientIllegalTransition             = "this action is not available at the current step"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientAPIKeyRequired                = "API key is required"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevURLParamMissing        = "url param %s is missing"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevUnexpectedHTTPStatus   = "unexpected HTTP status %d from %s"
	ErrDevTokenGeneration        = "failed to sign token"
	ErrDevInvalidAPIKey          = "api key does not match the configured hash"
	ErrDevAPIKeyRequired         = "api key header missing"
	ErrDevTooManyRequests        = "client %s is blocked until %s"
	ErrDevRemoteAddress          = "cannot parse remote address %q"
	ErrDevPanicRecovered         = "panic recovered"
	ErrDevMissingRequestID       = "request id missing from context"

	// Catalog and assessment messages
	ErrDevJointNotFound       = "joint %q not found"
	ErrDevInstrumentNotFound  = "instrument %q not found in joint %q"
	ErrDevAssessmentNotFound  = "assessment run %q not found"
	ErrDevInvalidAnswer       = "invalid answer"
	ErrDevIllegalTransition   = "illegal transition"
	ErrDevSinkNotConfigured   = "sink %q is enabled but not configured"
	ErrDevUnknownSink         = "unknown sink %q"
	ErrDevUnknownExportFormat = "unknown export format %q"

	// Mongo DB messages
	ErrDevMongoDBInsertDocument = "failed to insert document into collection %s"

	// Redis messages
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevRabbitMQNack           = "broker did not confirm message on queue %s"
)
