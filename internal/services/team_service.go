package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/payportal/go-selfservice/internal/models"
)

type TeamService interface {
	TeamMembers(ctx context.Context, serviceExternalID string) (models.TeamMembersView, error)
}

type team service

var _ TeamService = (*team)(nil)

// TeamMembers lists active and invited members of a service arranged by
// role. Users and invites are fetched in parallel.
func (t *team) TeamMembers(ctx context.Context, serviceExternalID string) (models.TeamMembersView, error) {
	var (
		users   []models.User
		invited []models.InvitedUser
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = t.srv.adminUsersClient.ServiceUsers(gctx, serviceExternalID)
		return err
	})
	g.Go(func() (err error) {
		invited, err = t.srv.adminUsersClient.InvitedUsers(gctx, serviceExternalID)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.TeamMembersView{}, err
	}

	view := models.TeamMembersView{}

	for _, user := range users {
		member := models.TeamMember{ExternalID: user.ExternalID, Email: user.Email}
		switch user.RoleForService(serviceExternalID) {
		case models.RoleAdmin:
			view.Admin = append(view.Admin, member)
		case models.RoleViewAndRefund:
			view.ViewAndRefund = append(view.ViewAndRefund, member)
		case models.RoleViewOnly:
			view.ViewOnly = append(view.ViewOnly, member)
		}
	}

	for _, invite := range invited {
		if invite.Disabled || invite.Expired {
			continue
		}
		member := models.TeamMember{Email: invite.Email}
		switch invite.Role {
		case models.RoleAdmin:
			view.InvitedAdmin = append(view.InvitedAdmin, member)
		case models.RoleViewAndRefund:
			view.InvitedViewAndRefund = append(view.InvitedViewAndRefund, member)
		case models.RoleViewOnly:
			view.InvitedViewOnly = append(view.InvitedViewOnly, member)
		}
		view.NumberInvited++
	}

	return view, nil
}
