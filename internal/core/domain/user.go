package domain

// Role is a coarse permission tag carried by every user and access token.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// roleLevels orders roles from least to most privileged.
var roleLevels = map[Role]int{
	RoleStaff: 1,
	RoleAdmin: 2,
}

// Valid reports whether r is one of the recognised roles.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Satisfies reports whether r is at least as privileged as min.
// Unknown roles never satisfy anything.
func (r Role) Satisfies(min Role) bool {
	have, ok := roleLevels[r]
	if !ok {
		return false
	}
	return have >= roleLevels[min]
}

// User models an authenticated studio employee.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Birth        *int   `json:"birth"`
	Active       bool   `json:"active"`
}

// UserPatch carries a sparse set of user field updates. Nil fields are left untouched.
type UserPatch struct {
	Name   *string
	Birth  *int
	Active *bool
	Role   *Role
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Birth == nil && p.Active == nil && p.Role == nil
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Birth != nil {
		birth := *p.Birth
		u.Birth = &birth
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
