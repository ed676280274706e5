package constvars

const (
	ResponseSuccess              = "success"
	ResponseUnknown              = "unknown"
	ResponseSessionStarted       = "questionnaire session started"
	ResponseGroupSubmitted       = "answers saved"
	ResponseMovedToPreviousGroup = "moved to previous group"
	ResponseSessionReset         = "questionnaire session reset"
	ResponseValueSetExpanded     = "value set expanded"
	ResponseHealthy              = "healthy"
	ResponseBotsDeployed         = "all bots deployed"
	ResponseCoreDataUploaded     = "core data uploaded"
)
