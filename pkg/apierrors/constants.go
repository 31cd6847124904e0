package apierrors

const (
	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailListTasks      = "failListTasks"
	MsgFailFetchTask      = "failFetchTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgTaskDeleted        = "taskDeleted"

	MsgUnauthorized       = "unauthorized"
	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgInvalidCredentials = "invalidCredentials"
	MsgEmailTaken         = "emailTaken"
	MsgFailRegister       = "failRegister"
	MsgFailLogin          = "failLogin"
)
