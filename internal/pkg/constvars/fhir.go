package constvars

const (
	ResourcePatient               = "Patient"
	ResourceQuestionnaire         = "Questionnaire"
	ResourceQuestionnaireResponse = "QuestionnaireResponse"
	ResourceValueSet              = "ValueSet"
	ResourceBundle                = "Bundle"
	ResourceBinary                = "Binary"
	ResourceBot                   = "Bot"
	ResourceSubscription          = "Subscription"
	ResourceProjectMembership     = "ProjectMembership"
	ResourceProject               = "Project"
)

// Questionnaire item types understood by the engine.
const (
	ItemTypeString     = "string"
	ItemTypeDate       = "date"
	ItemTypeChoice     = "choice"
	ItemTypeOpenChoice = "open-choice"
	ItemTypeBoolean    = "boolean"
	ItemTypeGroup      = "group"
	ItemTypeReference  = "reference"
)

const (
	ExtensionItemControl       = "http://hl7.org/fhir/StructureDefinition/questionnaire-itemControl"
	ExtensionEntryFormat       = "http://hl7.org/fhir/StructureDefinition/entryFormat"
	ExtensionItemIcon          = "https://konsulin.care/fhir/StructureDefinition/questionnaire-item-icon"
	ExtensionItemMask          = "https://konsulin.care/fhir/StructureDefinition/questionnaire-item-mask"
	ExtensionReferenceResource = "http://hl7.org/fhir/StructureDefinition/questionnaire-referenceResource"
)

const (
	ItemControlCheckBox    = "check-box"
	ItemControlRadioButton = "radio-button"
)

const (
	EnableWhenOperatorEqual          = "="
	EnableWhenOperatorNotEqual       = "!="
	EnableWhenOperatorGreater        = ">"
	EnableWhenOperatorLess           = "<"
	EnableWhenOperatorGreaterOrEqual = ">="
	EnableWhenOperatorLessOrEqual    = "<="
)

const (
	FhirQuestionnaireResponseStatusInProgress = "in-progress"
	FhirQuestionnaireResponseStatusCompleted  = "completed"
)

const (
	FhirBundleTypeBatch       = "batch"
	FhirBundleTypeTransaction = "transaction"
	FhirSubscriptionRestHook  = "rest-hook"
	FhirSubscriptionActive    = "active"
)

const (
	FhirSearchParamURL           = "url"
	FhirSearchParamName          = "name"
	FhirSearchParamSubject       = "subject"
	FhirSearchParamQuestionnaire = "questionnaire"
	FhirSearchParamSort          = "_sort"
	FhirSearchParamCount         = "_count"
	FhirSearchParamFilter        = "filter"
	FhirSearchParamUser          = "user"
	FhirSortLastUpdatedDesc      = "-_lastUpdated"
)

const (
	FhirOperationExpand = "$expand"
	FhirOperationDeploy = "$deploy"
)

const (
	FhirReferenceFormat    = "%s/%s"
	FhirUrnUUIDFormat      = "urn:uuid:%s"
	FhirBotReferenceToken  = "$bot-%s-reference"
	FhirBotIDToken         = "$bot-%s-id"
	FhirQuestionnaireToken = "$%s"
)

const (
	FhirBotRuntimeVersion        = "awslambda"
	FhirSubscriptionReasonFormat = "%s-subscription"
	FhirSubscriptionSearchFormat = "Subscription?url=%s"
)
