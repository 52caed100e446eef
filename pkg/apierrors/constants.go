package apierrors

const (
	MsgInvalidID          = "invalidID"
	MsgInvalidPayload     = "invalidPayload"
	MsgValidationFailed   = "validationFailed"
	MsgUnauthorized       = "unauthorized"
	MsgTokenExpired       = "tokenExpired"
	MsgInvalidCredentials = "invalidCredentials"
	MsgAccountDeactivated = "accountDeactivated"
	MsgEmailAlreadyExists = "emailAlreadyExists"
	MsgInternalError      = "internalError"

	MsgCategoryNotFound      = "categoryNotFound"
	MsgCategoryAlreadyExists = "categoryAlreadyExists"
	MsgFailCreateCategory    = "failCreateCategory"
	MsgFailListCategories    = "failListCategories"
	MsgFailUpdateCategory    = "failUpdateCategory"
	MsgFailDeleteCategory    = "failDeleteCategory"
	MsgFailCategoryStats     = "failCategoryStats"

	MsgTaskNotFound    = "taskNotFound"
	MsgFailCreateTask  = "failCreateTask"
	MsgFailListTask    = "errorListTask"
	MsgFailUpdateTask  = "failUpdateTask"
	MsgFailDeleteTask  = "failDeleteTask"
	MsgFailBulkUpdate  = "failBulkUpdate"
	MsgFailBulkDelete  = "failBulkDelete"
	MsgFailTaskStats   = "failTaskStats"
	MsgFailUpdateNotes = "failUpdateNotes"
)
