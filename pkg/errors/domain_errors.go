package errors

var (
	// Users & auth
	ErrUserNotFound     = NotFound("user not found")
	ErrUserInactive     = Forbidden("user account is deactivated")
	ErrNotAuthenticated = Unauthorized("not authenticated")

	// Channels
	ErrChannelNotFound    = NotFound("channel not found")
	ErrChannelNameEmpty   = InvalidArg("channel name is required")
	ErrChannelNameTooLong = InvalidArg("channel name must be 50 characters or less")
	ErrChannelQuota       = FailedPrecondition("channel limit reached")
	ErrChannelAccess      = Forbidden("access denied to this channel")

	// Membership transitions
	ErrAlreadyMember          = AlreadyExists("already a member of this channel")
	ErrDuplicateJoinRequest   = AlreadyExists("join request already pending")
	ErrDuplicateInvitation    = AlreadyExists("invitation already pending")
	ErrJoinRequestNotFound    = NotFound("join request not found")
	ErrInvitationNotFound     = NotFound("invitation not found")
	ErrMembershipNotFound     = NotFound("user is not a member of this channel")
	ErrChannelNotPrivate      = FailedPrecondition("channel is not private")
	ErrCannotRemoveCreator    = Forbidden("cannot remove the channel creator")
	ErrCannotModifyCreator    = Forbidden("cannot change the channel creator's role")
	ErrInvalidRole            = InvalidArg("invalid role")
	ErrNotInvitationRecipient = Forbidden("only the invited user can respond")
	ErrNotInviter             = Forbidden("only the inviter or a manager can retract")
	ErrPermissionDenied       = Forbidden("permission denied")

	// Messages
	ErrMessageNotFound = NotFound("message not found")
	ErrMessageEmpty    = InvalidArg("message content cannot be empty")
	ErrMessageTooLong  = InvalidArg("message content exceeds the size limit")

	// Settings
	ErrSettingNotFound = NotFound("setting not found")

	// Files
	ErrFileNotFound   = NotFound("file not found")
	ErrFileTooLarge   = InvalidArg("file size exceeds limit")
	ErrFileType       = InvalidArg("file type not allowed")
	ErrTooManyFiles   = InvalidArg("too many attachments")
	ErrDecryptionFail = FailedPrecondition("decryption failed")
)

func ErrStorage(cause error) error {
	return Wrap(CodeInternal, "storage failure", cause)
}
