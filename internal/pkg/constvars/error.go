package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"url":      "must be a valid url",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
}

var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gte": true,
}

// Messages used by the questionnaire form schema.
const (
	FormFieldRequiredMessage    = "This field is required"
	FormFieldInvalidDateMessage = "Invalid date"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientQuestionnaireNotFound         = "questionnaire not found"
	ErrClientFormInvalid                   = "some answers need your attention"
	ErrClientSubmitInProgress              = "your previous answers are still being saved"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevValidationFailed       = "validation failed"
	ErrDevFormValidationFailed   = "questionnaire form validation failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevURLParamValidation     = "failed to validate url param %s"
	ErrDevAuthSigningMethod      = "unexpected signing method"
	ErrDevAuthTokenInvalid       = "invalid token"
	ErrDevAuthTokenMissing       = "token missing"
	ErrDevAuthSubjectMissing     = "token does not carry a subject"
	ErrDevQuestionnaireNotFound  = "no questionnaire matches url %s"
	ErrDevSubmitLocked           = "submit already in progress for %s"
	ErrDevAcquireLock            = "failed to acquire submit lock"
	ErrDevRedisSet               = "failed to set redis key"
	ErrDevRedisGet               = "failed to get redis key"
	ErrDevRedisDelete            = "failed to delete redis key"
	ErrDevPublishEvent           = "failed to publish event to queue %s"
	ErrDevReadSeedData           = "failed to read seed data from %s"
	ErrDevReadBotFile            = "failed to read bot file %s"
	ErrDevBundleEntryFailed      = "bundle entry %d failed with status %s"
	ErrDevAuthenticateFHIRClient = "failed to authenticate against FHIR server"
	ErrDevStorageListObjects     = "failed to list objects in bucket %s"
	ErrDevStorageGetObject       = "failed to get object %s"
	ErrDevLockNotOwned           = "lock %s not owned by this client"
	ErrDevEventNotConfirmed      = "event was not confirmed by the broker"
	ErrDevInvalidSeedResource    = "seed file %s is not a FHIR resource"
	ErrDevCoreDataUploadFailed   = "%d of %d core data resources failed to upload"
	ErrDevBotBinaryMissing       = "executable binary of bot %s missing from bundle"

	// Spark messages
	ErrDevSparkGetFHIRResource    = "failed to get FHIR %s resource"
	ErrDevSparkCreateFHIRResource = "failed to create FHIR %s resource"
	ErrDevSparkUpdateFHIRResource = "failed to update FHIR %s resource"
	ErrDevSparkDecodeFHIRResponse = "failed to decode FHIR %s response"
	ErrDevSparkFHIRNotFound       = "FHIR %s resource not found"
)
