// Package authz is the single authorization chokepoint: every operation
// that needs an allow/deny decision goes through Resolve. Handlers and
// usecases must never re-derive creator/admin checks inline.
package authz

import (
	"context"

	"github.com/google/uuid"

	channel "github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
)

// Capabilities is the effective capability set of a user against a channel.
type Capabilities struct {
	CanRead             bool
	CanWrite            bool
	CanManageMembers    bool
	CanManageSettings   bool
	CanDeleteAnyMessage bool
}

func fullAccess() Capabilities {
	return Capabilities{
		CanRead:             true,
		CanWrite:            true,
		CanManageMembers:    true,
		CanManageSettings:   true,
		CanDeleteAnyMessage: true,
	}
}

// Resolve computes capabilities from already-loaded state. Pure: no I/O,
// no side effects. membership is nil when no row exists.
//
// Precedence: site admin, then creator, then the membership row, then
// public-channel fallthrough. A message's own sender may always delete
// their own message; that is enforced at the message layer, not here.
func Resolve(u *user.User, ch *channel.Channel, membership *channel.Membership) Capabilities {
	if u == nil || ch == nil {
		return Capabilities{}
	}

	if u.IsAdmin {
		return fullAccess()
	}
	if ch.CreatorID == u.ID {
		return fullAccess()
	}

	if membership == nil {
		if ch.IsPrivate {
			// No access at all; callers should steer the user toward a
			// join request instead.
			return Capabilities{}
		}
		return Capabilities{CanRead: true, CanWrite: true}
	}

	caps := Capabilities{CanRead: true, CanWrite: true}
	switch membership.Role {
	case channel.RoleAdmin, channel.RoleModerator:
		// Settings stay with the creator and site admins.
		caps.CanManageMembers = true
	}
	return caps
}

// MembershipGetter is the one slice of storage the resolver needs.
type MembershipGetter interface {
	GetMembership(ctx context.Context, channelID, userID uuid.UUID) (*channel.Membership, error)
}

// Resolver loads the membership row and applies Resolve. It holds no
// state beyond the injected repository handle.
type Resolver struct {
	memberships MembershipGetter
}

func NewResolver(memberships MembershipGetter) *Resolver {
	return &Resolver{memberships: memberships}
}

func (r *Resolver) Capabilities(ctx context.Context, u *user.User, ch *channel.Channel) (Capabilities, error) {
	if u == nil || ch == nil {
		return Capabilities{}, errors.InvalidArg("user and channel are required")
	}

	// Admin and creator short-circuit without touching storage.
	if u.IsAdmin || ch.CreatorID == u.ID {
		return fullAccess(), nil
	}

	m, err := r.memberships.GetMembership(ctx, ch.ID, u.ID)
	if err != nil && errors.CodeOf(err) != errors.CodeNotFound {
		return Capabilities{}, err
	}
	return Resolve(u, ch, m), nil
}
