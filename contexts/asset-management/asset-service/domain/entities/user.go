package entities

import (
	"strings"
	"time"

	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
)

type Role string

const (
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// DefaultPackageLimit applies to HR accounts that never purchased an upgrade.
const DefaultPackageLimit = 5

func ParseRole(value string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleHR:
		return RoleHR, nil
	case RoleEmployee:
		return RoleEmployee, nil
	default:
		return "", domainerrors.ErrInvalidRole
	}
}

type User struct {
	Email            string
	Name             string
	Photo            string
	Role             Role
	CompanyName      string
	CompanyLogo      string
	DateOfBirth      string
	PackageLimit     int
	CurrentEmployees int
	LastUpgrade      *time.Time
	CreatedAt        time.Time
}

// NewUser normalizes a sign-in profile into a persisted user.
// HR accounts start with the default package limit and no employees.
func NewUser(profile User, now time.Time) (User, error) {
	email := NormalizeEmail(profile.Email)
	if email == "" {
		return User{}, domainerrors.ErrInvalidRequest
	}
	role, err := ParseRole(string(profile.Role))
	if err != nil {
		return User{}, err
	}

	user := User{
		Email:       email,
		Name:        strings.TrimSpace(profile.Name),
		Photo:       strings.TrimSpace(profile.Photo),
		Role:        role,
		CompanyName: strings.TrimSpace(profile.CompanyName),
		CompanyLogo: strings.TrimSpace(profile.CompanyLogo),
		DateOfBirth: strings.TrimSpace(profile.DateOfBirth),
		CreatedAt:   now.UTC(),
	}
	if role == RoleHR {
		user.PackageLimit = DefaultPackageLimit
		if profile.PackageLimit > 0 {
			user.PackageLimit = profile.PackageLimit
		}
	}
	return user, nil
}

func (u User) IsHR() bool {
	return u.Role == RoleHR
}

func (u User) EffectivePackageLimit() int {
	if u.PackageLimit <= 0 {
		return DefaultPackageLimit
	}
	return u.PackageLimit
}

func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
