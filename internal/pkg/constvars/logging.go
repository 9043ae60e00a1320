package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingRequestKey         = "request"
	LoggingResponseKey        = "response"
	LoggingJointKey           = "joint_key"
	LoggingInstrumentIDKey    = "instrument_id"
	LoggingRunIDKey           = "run_id"
	LoggingRecordIDKey        = "record_id"
	LoggingQuestionIDKey      = "question_id"
	LoggingStateKey           = "state"
	LoggingCursorKey          = "cursor"
	LoggingInterpretationKey  = "interpretation"
	LoggingSinkKey            = "sink"
	LoggingSinkCountKey       = "sink_count"
	LoggingJointCountKey      = "joint_count"
	LoggingInstrumentCountKey = "instrument_count"
	LoggingRunCountKey        = "run_count"
	LoggingEvictedCountKey    = "evicted_count"
	LoggingRedisKey           = "redis_key"
	LoggingQueueKey           = "queue"
	LoggingBucketKey          = "bucket"
	LoggingCollectionKey      = "collection"
	LoggingURLKey             = "url"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingSuccessKey         = "success"
	LoggingIsClientRequestKey = "is_client_request_id"
)
