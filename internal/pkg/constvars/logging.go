package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingDataKey             = "data"
	LoggingQueryParamsKey      = "query_params"
	LoggingResponseKey         = "response"
	LoggingRequestKey          = "request"
	LoggingErrorKey            = "error"
	LoggingDurationKey         = "duration"
	LoggingSubjectKey          = "subject"
	LoggingQuestionnaireKey    = "questionnaire"
	LoggingQuestionnaireURLKey = "questionnaire_url"
	LoggingGroupIndexKey       = "group_index"
	LoggingResourceTypeKey     = "resource_type"
	LoggingResourceIDKey       = "resource_id"
	LoggingBotNameKey          = "bot_name"
	LoggingCountKey            = "count"
	LoggingRedisKey            = "redis_key"
	LoggingLockExpirationKey   = "lock_expiration"
	LoggingLockValueKey        = "lock_value"
	LoggingQueueKey            = "queue"
	LoggingEventTypeKey        = "event_type"
	LoggingURLKey              = "url"
	LoggingStatusCodeKey       = "status_code"
	LoggingMethodKey           = "method"
	LoggingPathKey             = "path"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingSourceKey           = "source"
	LoggingUploadedKey         = "uploaded"
	LoggingSkippedKey          = "skipped"
	LoggingFailedKey           = "failed"
)
