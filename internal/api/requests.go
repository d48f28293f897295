package api

type createChannelRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	IsPrivate      bool   `json:"is_private"`
	IsDiscoverable bool   `json:"is_discoverable"`
}

type updateChannelRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	IsPrivate      bool   `json:"is_private"`
	IsDiscoverable bool   `json:"is_discoverable"`
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

type inviteRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid4"`
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member moderator admin"`
}

type attachmentPayload struct {
	Name string `json:"name" validate:"required,max=255"`
	// Data is the base64-encoded file body.
	Data string `json:"data" validate:"required"`
}

type sendMessageRequest struct {
	Content     string              `json:"content" validate:"required"`
	Attachments []attachmentPayload `json:"attachments" validate:"dive"`
}

type setSettingRequest struct {
	Value string `json:"value"`
}

type purgeRequest struct {
	Days int `json:"days" validate:"gte=0"`
}
