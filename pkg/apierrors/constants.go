package apierrors

// Message ids of the error pages and the health report. Each one has an
// entry in every translation file.
const (
	MsgBadRequest          = "badRequest"
	MsgBadRequestDetail    = "badRequestDetail"
	MsgForbidden           = "forbidden"
	MsgForbiddenDetail     = "forbiddenDetail"
	MsgNotFound            = "notFound"
	MsgNotFoundDetail      = "notFoundDetail"
	MsgInternalError       = "internalError"
	MsgInternalErrorDetail = "internalErrorDetail"
	MsgInvalidID           = "invalidId"
	MsgInvalidForm         = "invalidField"
	MsgTodoNotFound        = "todoNotFound"
	MsgCategoryNotFound    = "categoryNotFound"
	MsgDatabaseDown        = "databaseDown"
)
