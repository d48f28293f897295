package usecase

import (
	"context"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/config"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/authz"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/storage"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/crypto"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

// DecryptionFailedPlaceholder replaces message bodies whose envelope no
// longer authenticates. Readers see a clearly-marked unreadable message,
// never garbage and never a dropped row.
const DecryptionFailedPlaceholder = "[decryption failed]"

// MessageUsecase is the append-only encrypted message log. Plaintext
// exists only in flight: it is sealed before the insert and opened after
// the select, always through the same box.
type MessageUsecase struct {
	channels channel.ChannelRepository
	messages channel.MessageRepository
	resolver *authz.Resolver
	box      *crypto.Box
	blobs    storage.BlobStore
	logger   *logger.Logger
	cfg      *config.Config
}

func NewMessageUsecase(
	channels channel.ChannelRepository,
	messages channel.MessageRepository,
	resolver *authz.Resolver,
	box *crypto.Box,
	blobs storage.BlobStore,
	logger *logger.Logger,
	cfg *config.Config,
) *MessageUsecase {
	return &MessageUsecase{
		channels: channels,
		messages: messages,
		resolver: resolver,
		box:      box,
		blobs:    blobs,
		logger:   logger,
		cfg:      cfg,
	}
}

func (uc *MessageUsecase) Send(ctx context.Context, actor *user.User, cmd channel.SendMessageCommand) (*channel.MessageDTO, error) {
	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return nil, apperrors.ErrMessageEmpty
	}
	if max := uc.cfg.Channel.MaxMessageLength; max > 0 && utf8.RuneCountInString(content) > max {
		return nil, apperrors.ErrMessageTooLong
	}

	ch, err := uc.channels.GetChannel(ctx, cmd.ChannelID)
	if err != nil {
		return nil, err
	}
	caps, err := uc.resolver.Capabilities(ctx, actor, ch)
	if err != nil {
		return nil, err
	}
	if !caps.CanWrite {
		return nil, accessError(ch)
	}

	if err := uc.validateAttachments(cmd.Attachments); err != nil {
		return nil, err
	}

	env, err := uc.box.Seal([]byte(content))
	if err != nil {
		uc.logger.Error("message seal failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}

	// Blobs first: a stray blob after a failed insert is garbage, a file
	// row without a blob would be a broken download.
	files := make([]*model.File, 0, len(cmd.Attachments))
	handles := make([]string, 0, len(cmd.Attachments))
	for _, att := range cmd.Attachments {
		handle, err := uc.blobs.Store(att.Data, att.Name)
		if err != nil {
			uc.discardBlobs(handles)
			return nil, apperrors.ErrStorage(err)
		}
		handles = append(handles, handle)
		files = append(files, &model.File{
			OriginalName: att.Name,
			StoredName:   handle,
			MimeType:     sniffMime(att.Data),
			FileSize:     int64(len(att.Data)),
		})
	}

	msg := &model.Message{
		ChannelID:  ch.ID,
		SenderID:   actor.ID,
		Ciphertext: env.Ciphertext,
		IV:         env.IV,
		Tag:        env.Tag,
	}
	if err := uc.messages.CreateMessageWithFiles(ctx, msg, files); err != nil {
		uc.discardBlobs(handles)
		uc.logger.Error("message insert failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}
	msg.Files = files

	dto := uc.toDTO(msg, content, false)
	dto.SenderName = actor.Username
	return &dto, nil
}

func (uc *MessageUsecase) List(ctx context.Context, actor *user.User, q channel.ListMessagesQuery) ([]channel.MessageDTO, error) {
	ch, err := uc.channels.GetChannel(ctx, q.ChannelID)
	if err != nil {
		return nil, err
	}
	caps, err := uc.resolver.Capabilities(ctx, actor, ch)
	if err != nil {
		return nil, err
	}
	if !caps.CanRead {
		return nil, accessError(ch)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = uc.cfg.Channel.MessagePageSize
	}

	msgs, err := uc.messages.ListMessages(ctx, q.ChannelID, limit, q.Order)
	if err != nil {
		uc.logger.Error("message listing failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}

	dtos := make([]channel.MessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		env := crypto.Envelope{Ciphertext: msg.Ciphertext, IV: msg.IV, Tag: msg.Tag}
		plaintext, err := uc.box.Open(env)

		var dto channel.MessageDTO
		if err != nil {
			// Fail visibly per message, never the whole listing.
			uc.logger.Warn("stored message failed authentication", "message_id", msg.ID)
			dto = uc.toDTO(msg, DecryptionFailedPlaceholder, true)
		} else {
			dto = uc.toDTO(msg, string(plaintext), false)
		}
		if msg.Sender != nil {
			dto.SenderName = msg.Sender.Username
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (uc *MessageUsecase) Delete(ctx context.Context, actor *user.User, messageID uuid.UUID) error {
	msg, err := uc.messages.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}

	if actor.ID != msg.SenderID {
		ch, err := uc.channels.GetChannel(ctx, msg.ChannelID)
		if err != nil {
			return err
		}
		caps, err := uc.resolver.Capabilities(ctx, actor, ch)
		if err != nil {
			return err
		}
		if !caps.CanDeleteAnyMessage {
			return apperrors.ErrPermissionDenied
		}
	}

	storedNames, err := uc.messages.DeleteMessage(ctx, messageID)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			return err
		}
		uc.logger.Error("message delete failed", "err", err)
		return apperrors.ErrStorage(err)
	}
	uc.discardBlobs(storedNames)
	return nil
}

func (uc *MessageUsecase) PurgeOlderThan(ctx context.Context, actor *user.User, days int) (int64, error) {
	if !actor.IsAdmin {
		return 0, apperrors.ErrPermissionDenied
	}
	if days <= 0 {
		days = uc.cfg.Channel.RetentionDays
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	storedNames, deleted, err := uc.messages.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		uc.logger.Error("retention sweep failed", "err", err)
		return 0, apperrors.ErrStorage(err)
	}
	uc.discardBlobs(storedNames)
	return deleted, nil
}

func (uc *MessageUsecase) validateAttachments(atts []channel.AttachmentUpload) error {
	if max := uc.cfg.Upload.MaxFilesPerMsg; max > 0 && len(atts) > max {
		return apperrors.ErrTooManyFiles
	}
	for _, att := range atts {
		if max := uc.cfg.Upload.MaxFileSize; max > 0 && int64(len(att.Data)) > max {
			return apperrors.ErrFileTooLarge
		}
		if !uc.mimeAllowed(sniffMime(att.Data)) {
			return apperrors.ErrFileType
		}
	}
	return nil
}

// sniffMime trusts content, not the client-declared type.
func sniffMime(data []byte) string {
	detected := http.DetectContentType(data)
	if mt, _, err := mime.ParseMediaType(detected); err == nil {
		return mt
	}
	return detected
}

func (uc *MessageUsecase) mimeAllowed(mt string) bool {
	for _, allowed := range uc.cfg.Upload.AllowedMimeList {
		if mt == allowed {
			return true
		}
	}
	return false
}

func (uc *MessageUsecase) discardBlobs(handles []string) {
	for _, h := range handles {
		if err := uc.blobs.Delete(h); err != nil {
			uc.logger.Warn("blob cleanup failed", "handle", h, "err", err)
		}
	}
}

func (uc *MessageUsecase) toDTO(msg *model.Message, content string, unreadable bool) channel.MessageDTO {
	files := make([]channel.FileDTO, 0, len(msg.Files))
	for _, f := range msg.Files {
		files = append(files, channel.FileDTO{
			ID:       f.ID,
			Name:     f.OriginalName,
			MimeType: f.MimeType,
			Size:     f.FileSize,
		})
	}
	return channel.MessageDTO{
		ID:            msg.ID,
		ChannelID:     msg.ChannelID,
		SenderID:      msg.SenderID,
		Content:       content,
		Unreadable:    unreadable,
		HasAttachment: msg.HasAttachment,
		Files:         files,
		CreatedAt:     msg.CreatedAt,
	}
}
