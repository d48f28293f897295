// Package api is the HTTP surface. Handlers decode, validate and
// delegate; every permission decision happens in the usecases behind the
// authorization resolver, never here.
package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/auth"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/settings"
	userdomain "github.com/theflightrs/Speedchannel-Ultimate/internal/user"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

type Handlers struct {
	directory  channel.DirectoryUsecase
	membership channel.MembershipUsecase
	messages   channel.MessageUsecase
	settings   settings.SettingsUsecase
	users      userdomain.UserRepository
	validate   *validator.Validate
	logger     *logger.Logger
}

func NewHandlers(
	directory channel.DirectoryUsecase,
	membership channel.MembershipUsecase,
	messages channel.MessageUsecase,
	settings settings.SettingsUsecase,
	users userdomain.UserRepository,
	logger *logger.Logger,
) *Handlers {
	return &Handlers{
		directory:  directory,
		membership: membership,
		messages:   messages,
		settings:   settings,
		users:      users,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, apperrors.InvalidArg("malformed request body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondError(w, apperrors.InvalidArg(err.Error()))
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, apperrors.InvalidArg(name+" must be a valid uuid"))
		return uuid.Nil, false
	}
	return id, true
}

type channelResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	IsPrivate      bool      `json:"is_private"`
	IsDiscoverable bool      `json:"is_discoverable"`
	CreatorID      uuid.UUID `json:"creator_id"`
	IsCreator      bool      `json:"is_creator"`
	IsMember       bool      `json:"is_member"`
	HasAccess      bool      `json:"has_access"`
	CreatedAt      time.Time `json:"created_at"`
}

func toChannelResponse(v channel.ChannelView) channelResponse {
	return channelResponse{
		ID:             v.Channel.ID,
		Name:           v.Channel.Name,
		IsPrivate:      v.Channel.IsPrivate,
		IsDiscoverable: v.Channel.IsDiscoverable,
		CreatorID:      v.Channel.CreatorID,
		IsCreator:      v.IsCreator,
		IsMember:       v.IsMember,
		HasAccess:      v.HasAccess,
		CreatedAt:      v.Channel.CreatedAt,
	}
}

// Channels

func (h *Handlers) createChannel(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req createChannelRequest
	if !h.decode(w, r, &req) {
		return
	}

	ch, err := h.directory.Create(r.Context(), actor, channel.CreateChannelCommand{
		Name:           req.Name,
		IsPrivate:      req.IsPrivate,
		IsDiscoverable: req.IsDiscoverable,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toChannelResponse(channel.ChannelView{
		Channel: ch, IsCreator: true, HasAccess: true,
	}))
}

func (h *Handlers) listChannels(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	views, err := h.directory.ListVisible(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]channelResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toChannelResponse(v))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handlers) getChannel(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	view, err := h.directory.Get(r.Context(), actor, channelID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toChannelResponse(*view))
}

func (h *Handlers) updateChannel(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	var req updateChannelRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.directory.Update(r.Context(), actor, channel.UpdateChannelCommand{
		ChannelID:      channelID,
		Name:           req.Name,
		IsPrivate:      req.IsPrivate,
		IsDiscoverable: req.IsDiscoverable,
	}); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) deleteChannel(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	if err := h.directory.Delete(r.Context(), actor, channelID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Membership

func (h *Handlers) listMembers(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	members, err := h.membership.Members(r.Context(), actor, channelID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

func (h *Handlers) removeMember(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.membership.Remove(r.Context(), actor, channelID, userID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) assignRole(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	var req assignRoleRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.membership.AssignRole(r.Context(), actor, channelID, userID, model.Role(req.Role)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Join requests (knocks)

func (h *Handlers) knock(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	req, err := h.membership.Knock(r.Context(), actor, channelID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, channel.JoinRequestDTO{
		ID:          req.ID,
		ChannelID:   req.ChannelID,
		UserID:      req.UserID,
		Username:    actor.Username,
		RequestedAt: req.CreatedAt,
	})
}

func (h *Handlers) listKnocks(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	knocks, err := h.membership.PendingKnocks(r.Context(), actor, channelID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, knocks)
}

func (h *Handlers) respondToKnock(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	requestID, ok := pathUUID(w, r, "requestID")
	if !ok {
		return
	}

	var req respondRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.membership.RespondToKnock(r.Context(), actor, requestID, req.Accept); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Invitations

func (h *Handlers) invite(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	var req inviteRequest
	if !h.decode(w, r, &req) {
		return
	}
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		respondError(w, apperrors.InvalidArg("recipient_id must be a valid uuid"))
		return
	}

	inv, err := h.membership.Invite(r.Context(), actor, channelID, recipientID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, channel.InvitationDTO{
		ChannelID:   inv.ChannelID,
		RecipientID: inv.RecipientID,
		InviterID:   inv.InviterID,
		InvitedAt:   inv.CreatedAt,
	})
}

func (h *Handlers) listInvitations(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	invs, err := h.membership.PendingInvitations(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invs)
}

func (h *Handlers) respondToInvitation(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	var req respondRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.membership.RespondToInvitation(r.Context(), actor, channelID, req.Accept); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) retractInvitation(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}
	recipientID, ok := pathUUID(w, r, "recipientID")
	if !ok {
		return
	}

	if err := h.membership.RetractInvitation(r.Context(), actor, channelID, recipientID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Messages

func (h *Handlers) sendMessage(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	var req sendMessageRequest
	if !h.decode(w, r, &req) {
		return
	}

	atts := make([]channel.AttachmentUpload, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		data, err := base64.StdEncoding.DecodeString(a.Data)
		if err != nil {
			respondError(w, apperrors.InvalidArg("attachment data must be base64"))
			return
		}
		atts = append(atts, channel.AttachmentUpload{Name: a.Name, Data: data})
	}

	dto, err := h.messages.Send(r.Context(), actor, channel.SendMessageCommand{
		ChannelID:   channelID,
		Content:     req.Content,
		Attachments: atts,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto)
}

func (h *Handlers) listMessages(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	channelID, ok := pathUUID(w, r, "channelID")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondError(w, apperrors.InvalidArg("limit must be a non-negative integer"))
			return
		}
	}
	order := channel.NewestFirst
	if r.URL.Query().Get("order") == string(channel.OldestFirst) {
		order = channel.OldestFirst
	}

	dtos, err := h.messages.List(r.Context(), actor, channel.ListMessagesQuery{
		ChannelID: channelID,
		Limit:     limit,
		Order:     order,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dtos)
}

func (h *Handlers) deleteMessage(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	messageID, ok := pathUUID(w, r, "messageID")
	if !ok {
		return
	}

	if err := h.messages.Delete(r.Context(), actor, messageID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) purgeMessages(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req purgeRequest
	if !h.decode(w, r, &req) {
		return
	}

	deleted, err := h.messages.PurgeOlderThan(r.Context(), actor, req.Days)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// Users

func (h *Handlers) searchUsers(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.UserFromContext(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, apperrors.InvalidArg("query parameter q is required"))
		return
	}

	found, err := h.users.SearchUsers(r.Context(), query, 20)
	if err != nil {
		respondError(w, err)
		return
	}

	type userResponse struct {
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
	}
	out := make([]userResponse, 0, len(found))
	for _, u := range found {
		out = append(out, userResponse{ID: u.ID, Username: u.Username})
	}
	respondJSON(w, http.StatusOK, out)
}

// Settings

func (h *Handlers) listSettings(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.UserFromContext(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	all, err := h.settings.All(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, all)
}

func (h *Handlers) setSetting(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req setSettingRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.settings.Set(r.Context(), actor, chi.URLParam(r, "key"), req.Value); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
