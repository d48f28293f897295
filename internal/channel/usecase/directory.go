package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/config"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/authz"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/storage"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

// DirectoryUsecase implements channel creation, listing and settings.
//
// Creator access is implicit: creating a channel writes no membership row,
// the resolver grants the creator full capabilities by id comparison.
type DirectoryUsecase struct {
	channels    channel.ChannelRepository
	memberships channel.MembershipRepository
	resolver    *authz.Resolver
	blobs       storage.BlobStore
	logger      *logger.Logger
	cfg         *config.Config
}

func NewDirectoryUsecase(
	channels channel.ChannelRepository,
	memberships channel.MembershipRepository,
	resolver *authz.Resolver,
	blobs storage.BlobStore,
	logger *logger.Logger,
	cfg *config.Config,
) *DirectoryUsecase {
	return &DirectoryUsecase{
		channels:    channels,
		memberships: memberships,
		resolver:    resolver,
		blobs:       blobs,
		logger:      logger,
		cfg:         cfg,
	}
}

func (uc *DirectoryUsecase) Create(ctx context.Context, actor *user.User, cmd channel.CreateChannelCommand) (*model.Channel, error) {
	name, err := uc.validateName(cmd.Name)
	if err != nil {
		return nil, err
	}

	count, err := uc.channels.CountByCreator(ctx, actor.ID)
	if err != nil {
		uc.logger.Error("counting channels failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}
	if count >= uc.cfg.Channel.MaxPerUser {
		return nil, apperrors.ErrChannelQuota
	}

	ch := &model.Channel{
		Name:           name,
		CreatorID:      actor.ID,
		IsPrivate:      cmd.IsPrivate,
		IsDiscoverable: cmd.IsPrivate && cmd.IsDiscoverable,
	}
	if err := uc.channels.CreateChannel(ctx, ch); err != nil {
		uc.logger.Error("channel insert failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}
	return ch, nil
}

func (uc *DirectoryUsecase) Get(ctx context.Context, actor *user.User, channelID uuid.UUID) (*channel.ChannelView, error) {
	ch, err := uc.channels.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	caps, err := uc.resolver.Capabilities(ctx, actor, ch)
	if err != nil {
		return nil, err
	}

	isMember := false
	if _, merr := uc.memberships.GetMembership(ctx, ch.ID, actor.ID); merr == nil {
		isMember = true
	}

	if !caps.CanRead && !(ch.IsPrivate && ch.IsDiscoverable) {
		// Not visible and not accessible: don't confirm existence.
		return nil, apperrors.ErrChannelNotFound
	}

	return &channel.ChannelView{
		Channel:   ch,
		IsCreator: ch.CreatorID == actor.ID,
		IsMember:  isMember,
		HasAccess: caps.CanRead,
	}, nil
}

func (uc *DirectoryUsecase) Update(ctx context.Context, actor *user.User, cmd channel.UpdateChannelCommand) error {
	ch, err := uc.channels.GetChannel(ctx, cmd.ChannelID)
	if err != nil {
		return err
	}

	caps, err := uc.resolver.Capabilities(ctx, actor, ch)
	if err != nil {
		return err
	}
	if !caps.CanManageSettings {
		if !caps.CanRead {
			return accessError(ch)
		}
		return apperrors.ErrPermissionDenied
	}

	name, err := uc.validateName(cmd.Name)
	if err != nil {
		return err
	}

	ch.Name = name
	ch.IsPrivate = cmd.IsPrivate
	ch.IsDiscoverable = cmd.IsPrivate && cmd.IsDiscoverable
	if err := uc.channels.UpdateChannel(ctx, ch); err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			return err
		}
		uc.logger.Error("channel update failed", "err", err)
		return apperrors.ErrStorage(err)
	}
	return nil
}

// Delete removes the channel and everything it owns. Blob removal happens
// after the transaction commits; a blob that outlives its rows is
// harmless garbage, the reverse would be a dangling reference.
func (uc *DirectoryUsecase) Delete(ctx context.Context, actor *user.User, channelID uuid.UUID) error {
	ch, err := uc.channels.GetChannel(ctx, channelID)
	if err != nil {
		return err
	}

	caps, err := uc.resolver.Capabilities(ctx, actor, ch)
	if err != nil {
		return err
	}
	if !caps.CanManageSettings {
		if !caps.CanRead {
			return accessError(ch)
		}
		return apperrors.ErrPermissionDenied
	}

	storedNames, err := uc.channels.DeleteChannelCascade(ctx, channelID)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			return err
		}
		uc.logger.Error("channel cascade delete failed", "err", err)
		return apperrors.ErrStorage(err)
	}

	for _, name := range storedNames {
		if err := uc.blobs.Delete(name); err != nil {
			uc.logger.Warn("orphaned blob after channel delete", "handle", name, "err", err)
		}
	}
	return nil
}

func (uc *DirectoryUsecase) ListVisible(ctx context.Context, actor *user.User) ([]channel.ChannelView, error) {
	channels, err := uc.channels.ListVisibleChannels(ctx, actor)
	if err != nil {
		uc.logger.Error("channel listing failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}

	memberIDs, err := uc.memberships.ListMemberChannelIDs(ctx, actor.ID)
	if err != nil {
		uc.logger.Error("membership listing failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}
	memberOf := make(map[uuid.UUID]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		memberOf[id] = struct{}{}
	}

	views := make([]channel.ChannelView, 0, len(channels))
	for _, ch := range channels {
		_, isMember := memberOf[ch.ID]
		isCreator := ch.CreatorID == actor.ID
		views = append(views, channel.ChannelView{
			Channel:   ch,
			IsCreator: isCreator,
			IsMember:  isMember,
			HasAccess: actor.IsAdmin || isCreator || isMember || !ch.IsPrivate,
		})
	}
	return views, nil
}

func (uc *DirectoryUsecase) validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.ErrChannelNameEmpty
	}
	// Characters, not bytes: multi-byte names count correctly.
	if utf8.RuneCountInString(name) > uc.cfg.Channel.NameMaxLen {
		return "", apperrors.ErrChannelNameTooLong
	}
	return name, nil
}
