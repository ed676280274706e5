package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SUBJECT_KEY    ContextKey = "subject"
)

const (
	REQUEST_ID_PREFIX = "QNR_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	RedisSessionKeyFormat = "questionnaire:session:%s:%s"
	RedisSubmitLockFormat = "questionnaire:submit:%s:%s"
)

const (
	EventQuestionnaireResponseSaved = "questionnaire_response.saved"
)

const (
	DateLayout = "2006-01-02"
)
