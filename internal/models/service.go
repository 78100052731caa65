package models

// Roles recognised by adminusers.
const (
	RoleAdmin         = "admin"
	RoleViewAndRefund = "view-and-refund"
	RoleViewOnly      = "view-only"
)

// PSP test account stages tracked on a service.
const (
	PspTestAccountNotStarted       = "NOT_STARTED"
	PspTestAccountRequestSubmitted = "REQUEST_SUBMITTED"
	PspTestAccountCreated          = "CREATED"
)

type ServiceRole struct {
	Service struct {
		ExternalID string `json:"external_id"`
		Name       string `json:"name"`
	} `json:"service"`
	Role struct {
		Name string `json:"name"`
	} `json:"role"`
}

type User struct {
	ExternalID   string        `json:"external_id"`
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	ServiceRoles []ServiceRole `json:"service_roles"`
}

// RoleForService resolves the user's role on one service, empty when they
// are not a member.
func (u User) RoleForService(serviceExternalID string) string {
	for _, sr := range u.ServiceRoles {
		if sr.Service.ExternalID == serviceExternalID {
			return sr.Role.Name
		}
	}
	return ""
}

type InvitedUser struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Expired  bool   `json:"expired"`
	Disabled bool   `json:"disabled"`
}

type TeamMember struct {
	ExternalID string `json:"external_id,omitempty"`
	Email      string `json:"email"`
}

// TeamMembersView groups active and invited members by role for rendering.
type TeamMembersView struct {
	Admin         []TeamMember `json:"admin"`
	ViewAndRefund []TeamMember `json:"view_and_refund"`
	ViewOnly      []TeamMember `json:"view_only"`

	InvitedAdmin         []TeamMember `json:"invited_admin"`
	InvitedViewAndRefund []TeamMember `json:"invited_view_and_refund"`
	InvitedViewOnly      []TeamMember `json:"invited_view_only"`

	NumberInvited int `json:"number_invited"`
}

type PortalService struct {
	ExternalID                 string `json:"external_id"`
	Name                       string `json:"name"`
	CreatedDate                string `json:"created_date,omitempty"`
	CurrentPspTestAccountStage string `json:"current_psp_test_account_stage,omitempty"`
}
