package models

// Organization is a tenant record managed by the backend. Role is the
// requesting operator's role within the organization; the backend fills it in
// on list responses. Members is only populated on create and detail responses.
type Organization struct {
	OrgID     string               `json:"org_id"`
	Name      string               `json:"name"`
	CreatedBy string               `json:"created_by"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
	Role      Role                 `json:"role,omitempty"`
	Members   []OrganizationMember `json:"members,omitempty"`
}

// OrganizationMember is a single membership row within an organization.
type OrganizationMember struct {
	OrgID     string `json:"org_id"`
	UserID    string `json:"user_id"`
	Role      Role   `json:"role"`
	InvitedBy string `json:"invited_by"`
	CreatedAt string `json:"created_at"`
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleNone  Role = "none"
)

// RolesMap is used for checking if a role is valid on the client side before
// a request is made. RoleNone is display-only and never sent to the backend.
var RolesMap = map[Role]struct{}{
	RoleAdmin: {},
	RoleStaff: {},
}

type CreateOrganizationFlags struct {
	Name string
}

type DeleteOrganizationFlags struct {
	Yes bool
}

type AddMemberFlags struct {
	Role string
}

type UpdateMemberFlags struct {
	Role string
}

type RemoveMemberFlags struct {
	Yes bool
}
