package semantic

// Role is the closed set of semantic color slots the resolver fills. Role
// values are the only way the rest of the system addresses a slot; the
// dotted path form used in token trees and override files is produced by
// Path, never parsed back piecemeal.
type Role int

const (
	RoleSurface Role = iota
	RoleSurfaceVariant
	RoleSurfaceInverted
	RoleSurfaceInvertedVariant

	RoleTextPrimary
	RoleTextSecondary
	RoleTextTertiary
	RoleTextPrimaryInverse
	RoleTextSecondaryInverse
	RoleTextTertiaryInverse

	RoleOutlineSubtle
	RoleOutlineDefault
	RoleOutlineIntense
	RoleOutlineSubtleInverse
	RoleOutlineDefaultInverse
	RoleOutlineIntenseInverse

	RoleSurfacePrimary
	RoleSurfacePrimarySubtle
	RoleSurfacePrimaryIntense

	RoleOutlinePrimary
	RoleOutlinePrimarySubtle
	RoleOutlinePrimaryIntense

	RoleTextOnPrimary

	roleCount
)

// Group names partition roles into the tree's second-level sections.
const (
	GroupSurface = "surface"
	GroupText    = "text"
	GroupOutline = "outline"
)

// Family names partition roles by source scale.
const (
	FamilyNeutral = "neutral"
	FamilyPrimary = "primary"
)

type roleSpec struct {
	group  string
	family string
	name   string
	mirror Role
}

var roleSpecs = [roleCount]roleSpec{
	RoleSurface:                {GroupSurface, FamilyNeutral, "surfaceBase", RoleSurfaceInverted},
	RoleSurfaceVariant:         {GroupSurface, FamilyNeutral, "surfaceVariant", RoleSurfaceInvertedVariant},
	RoleSurfaceInverted:        {GroupSurface, FamilyNeutral, "surfaceInverted", RoleSurface},
	RoleSurfaceInvertedVariant: {GroupSurface, FamilyNeutral, "surfaceInvertedVariant", RoleSurfaceVariant},

	RoleTextPrimary:          {GroupText, FamilyNeutral, "primary", RoleTextPrimaryInverse},
	RoleTextSecondary:        {GroupText, FamilyNeutral, "secondary", RoleTextSecondaryInverse},
	RoleTextTertiary:         {GroupText, FamilyNeutral, "tertiary", RoleTextTertiaryInverse},
	RoleTextPrimaryInverse:   {GroupText, FamilyNeutral, "primaryInverse", RoleTextPrimary},
	RoleTextSecondaryInverse: {GroupText, FamilyNeutral, "secondaryInverse", RoleTextSecondary},
	RoleTextTertiaryInverse:  {GroupText, FamilyNeutral, "tertiaryInverse", RoleTextTertiary},

	RoleOutlineSubtle:         {GroupOutline, FamilyNeutral, "subtle", RoleOutlineSubtleInverse},
	RoleOutlineDefault:        {GroupOutline, FamilyNeutral, "default", RoleOutlineDefaultInverse},
	RoleOutlineIntense:        {GroupOutline, FamilyNeutral, "intense", RoleOutlineIntenseInverse},
	RoleOutlineSubtleInverse:  {GroupOutline, FamilyNeutral, "subtleInverse", RoleOutlineSubtle},
	RoleOutlineDefaultInverse: {GroupOutline, FamilyNeutral, "defaultInverse", RoleOutlineDefault},
	RoleOutlineIntenseInverse: {GroupOutline, FamilyNeutral, "intenseInverse", RoleOutlineIntense},

	RoleSurfacePrimary:        {GroupSurface, FamilyPrimary, "base", RoleSurfacePrimary},
	RoleSurfacePrimarySubtle:  {GroupSurface, FamilyPrimary, "subtle", RoleSurfacePrimarySubtle},
	RoleSurfacePrimaryIntense: {GroupSurface, FamilyPrimary, "intense", RoleSurfacePrimaryIntense},

	RoleOutlinePrimary:        {GroupOutline, FamilyPrimary, "base", RoleOutlinePrimary},
	RoleOutlinePrimarySubtle:  {GroupOutline, FamilyPrimary, "subtle", RoleOutlinePrimarySubtle},
	RoleOutlinePrimaryIntense: {GroupOutline, FamilyPrimary, "intense", RoleOutlinePrimaryIntense},

	RoleTextOnPrimary: {GroupText, FamilyPrimary, "onPrimary", RoleTextOnPrimary},
}

// Roles returns every role in declaration order.
func Roles() []Role {
	all := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		all = append(all, r)
	}
	return all
}

func (r Role) valid() bool {
	return r >= 0 && r < roleCount
}

// Group returns the tree section this role belongs to.
func (r Role) Group() string {
	if !r.valid() {
		return ""
	}
	return roleSpecs[r].group
}

// Family reports which scale feeds this role.
func (r Role) Family() string {
	if !r.valid() {
		return ""
	}
	return roleSpecs[r].family
}

// Name is the leaf key used in token trees and override files.
func (r Role) Name() string {
	if !r.valid() {
		return ""
	}
	return roleSpecs[r].name
}

// Path is the theme-agnostic dotted role path, e.g.
// "surface.neutral.surfaceBase". Override maps are keyed by this path,
// optionally prefixed with "light." or "dark." to target one theme.
func (r Role) Path() string {
	if !r.valid() {
		return ""
	}
	spec := roleSpecs[r]
	return spec.group + "." + spec.family + "." + spec.name
}

// Mirror returns the role that takes this role's assignment in the dark
// theme. Surface and inverted-surface swap, text and outline hierarchies
// swap with their Inverse counterparts, and primary-family roles are their
// own mirror.
func (r Role) Mirror() Role {
	if !r.valid() {
		return r
	}
	return roleSpecs[r].mirror
}

func (r Role) String() string {
	return r.Path()
}
