package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	channel "github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

func TestResolve(t *testing.T) {
	creatorID := uuid.New()
	userID := uuid.New()

	privateChannel := &channel.Channel{ID: uuid.New(), CreatorID: creatorID, IsPrivate: true}
	publicChannel := &channel.Channel{ID: uuid.New(), CreatorID: creatorID, IsPrivate: false}

	plain := &user.User{ID: userID}
	siteAdmin := &user.User{ID: userID, IsAdmin: true}
	creator := &user.User{ID: creatorID}

	tests := []struct {
		name       string
		user       *user.User
		channel    *channel.Channel
		membership *channel.Membership
		want       Capabilities
	}{
		{
			name:    "site admin gets everything unconditionally",
			user:    siteAdmin,
			channel: privateChannel,
			want:    fullAccess(),
		},
		{
			name:    "creator gets everything without a membership row",
			user:    creator,
			channel: privateChannel,
			want:    fullAccess(),
		},
		{
			name:    "non-member on private channel gets nothing",
			user:    plain,
			channel: privateChannel,
			want:    Capabilities{},
		},
		{
			name:    "non-member on public channel reads and writes",
			user:    plain,
			channel: publicChannel,
			want:    Capabilities{CanRead: true, CanWrite: true},
		},
		{
			name:       "plain member reads and writes only",
			user:       plain,
			channel:    privateChannel,
			membership: &channel.Membership{ChannelID: privateChannel.ID, UserID: userID, Role: channel.RoleMember},
			want:       Capabilities{CanRead: true, CanWrite: true},
		},
		{
			name:       "moderator manages members but not settings",
			user:       plain,
			channel:    privateChannel,
			membership: &channel.Membership{ChannelID: privateChannel.ID, UserID: userID, Role: channel.RoleModerator},
			want:       Capabilities{CanRead: true, CanWrite: true, CanManageMembers: true},
		},
		{
			name:       "channel admin manages members but not settings",
			user:       plain,
			channel:    privateChannel,
			membership: &channel.Membership{ChannelID: privateChannel.ID, UserID: userID, Role: channel.RoleAdmin},
			want:       Capabilities{CanRead: true, CanWrite: true, CanManageMembers: true},
		},
		{
			name: "nil inputs resolve to nothing",
			want: Capabilities{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.user, tt.channel, tt.membership)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Write never without read, across every role and visibility combination.
func TestResolve_WriteImpliesRead(t *testing.T) {
	creatorID := uuid.New()
	userID := uuid.New()

	users := []*user.User{
		{ID: userID},
		{ID: userID, IsAdmin: true},
		{ID: creatorID},
	}
	channels := []*channel.Channel{
		{ID: uuid.New(), CreatorID: creatorID, IsPrivate: true},
		{ID: uuid.New(), CreatorID: creatorID, IsPrivate: true, IsDiscoverable: true},
		{ID: uuid.New(), CreatorID: creatorID},
	}
	memberships := []*channel.Membership{
		nil,
		{UserID: userID, Role: channel.RoleMember},
		{UserID: userID, Role: channel.RoleModerator},
		{UserID: userID, Role: channel.RoleAdmin},
	}

	for _, u := range users {
		for _, ch := range channels {
			for _, m := range memberships {
				caps := Resolve(u, ch, m)
				if caps.CanWrite {
					assert.True(t, caps.CanRead, "write without read for user=%v channel=%v", u, ch)
				}
			}
		}
	}
}
