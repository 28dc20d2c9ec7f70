package apierrors

const (
	MsgInvalidTaskID             = "invalidTaskID"
	MsgInvalidUserID             = "invalidUserID"
	MsgInvalidAttachmentID       = "invalidAttachmentID"
	MsgInvalidTaskPayload        = "invalidTaskPayload"
	MsgInvalidPermissionPayload  = "invalidPermissionPayload"
	MsgInvalidUserPayload        = "invalidUserPayload"
	MsgTaskNotFound              = "taskNotFound"
	MsgAttachmentNotFound        = "attachmentNotFound"
	MsgPermissionNotFound        = "permissionNotFound"
	MsgUserNotFound              = "userNotFound"
	MsgAccessForbidden           = "accessForbidden"
	MsgNotTaskCreator            = "notTaskCreator"
	MsgInvalidCredentials        = "invalidCredentials"
	MsgLoginTaken                = "loginTaken"
	MsgTokenMissing              = "tokenMissing"
	MsgTokenInvalid              = "tokenInvalid"
	MsgNoFileProvided            = "noFileProvided"
	MsgUnsupportedFileType       = "unsupportedFileType"
	MsgFileTooLarge              = "fileTooLarge"
	MsgInternalError             = "internalError"
)
