package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/payportal/go-selfservice/internal/models"
)

func userWithRole(externalID, email, serviceExternalID, role string) models.User {
	user := models.User{ExternalID: externalID, Email: email}

	var sr models.ServiceRole
	sr.Service.ExternalID = serviceExternalID
	sr.Role.Name = role
	user.ServiceRoles = []models.ServiceRole{sr}

	return user
}

func TestTeamService_TeamMembers(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	users := []models.User{
		userWithRole("u1", "admin@example.com", "svc-1", models.RoleAdmin),
		userWithRole("u2", "refund@example.com", "svc-1", models.RoleViewAndRefund),
		userWithRole("u3", "viewer@example.com", "svc-1", models.RoleViewOnly),
		userWithRole("u4", "other@example.com", "svc-2", models.RoleAdmin),
	}
	invited := []models.InvitedUser{
		{Email: "new-admin@example.com", Role: models.RoleAdmin},
		{Email: "new-viewer@example.com", Role: models.RoleViewOnly},
		{Email: "expired@example.com", Role: models.RoleAdmin, Expired: true},
		{Email: "disabled@example.com", Role: models.RoleViewOnly, Disabled: true},
	}

	helper.mockAdminUsers.EXPECT().ServiceUsers(gomock.Any(), "svc-1").Return(users, nil)
	helper.mockAdminUsers.EXPECT().InvitedUsers(gomock.Any(), "svc-1").Return(invited, nil)

	view, err := helper.services.Team.TeamMembers(ctx, "svc-1")
	require.NoError(t, err)

	require.Len(t, view.Admin, 1)
	assert.Equal(t, "admin@example.com", view.Admin[0].Email)
	require.Len(t, view.ViewAndRefund, 1)
	require.Len(t, view.ViewOnly, 1)

	// user u4 has no role on svc-1 and is dropped
	assert.Equal(t, "viewer@example.com", view.ViewOnly[0].Email)

	require.Len(t, view.InvitedAdmin, 1)
	require.Len(t, view.InvitedViewOnly, 1)
	assert.Empty(t, view.InvitedViewAndRefund)
	assert.Equal(t, 2, view.NumberInvited)
}

func TestTeamService_TeamMembers_UsersError(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	wantErr := errors.New("adminusers unreachable")
	helper.mockAdminUsers.EXPECT().ServiceUsers(gomock.Any(), "svc-1").Return(nil, wantErr)
	helper.mockAdminUsers.EXPECT().InvitedUsers(gomock.Any(), "svc-1").Return(nil, nil).AnyTimes()

	_, err := helper.services.Team.TeamMembers(ctx, "svc-1")
	assert.ErrorIs(t, err, wantErr)
}
