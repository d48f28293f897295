package usecase

import (
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
)

// accessError is the deny answer for a user without read access. Hidden
// private channels must look like they don't exist: only channels the
// listing already discloses get a plain access-denied.
func accessError(ch *model.Channel) error {
	if ch.IsPrivate && !ch.IsDiscoverable {
		return apperrors.ErrChannelNotFound
	}
	return apperrors.ErrChannelAccess
}
