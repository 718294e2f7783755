package apierrors

const (
	MsgUnauthenticated     = "unauthenticated"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgInvalidLoginPayload = "invalidLoginPayload"
	MsgFailLogin           = "failLogin"
	MsgFailLogout          = "failLogout"
	MsgFailCurrentUser     = "failCurrentUser"
	MsgFailAuthenticate    = "failAuthenticate"
	MsgLoggedOut           = "loggedOut"

	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgProjectNotFound       = "projectNotFound"
	MsgFailListProjects      = "failListProjects"
	MsgFailGetProject        = "failGetProject"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"
	MsgProjectDeleted        = "projectDeleted"

	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskQuery   = "invalidTaskQuery"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTask       = "errorListTask"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgTaskDeleted        = "taskDeleted"
)
