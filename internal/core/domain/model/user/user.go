package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	// ErrUserIsNotConstructed is returned when a User was not built via NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrNameIsRequired is returned for an empty display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned for an empty email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrInvalidCredentials is returned when a password does not match its hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when another account already uses the email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrAccountInactive is returned when a deactivated account tries to sign in.
	ErrAccountInactive = errors.New("account is inactive")
)

// Profile is the optional contact data of a user.
type Profile struct {
	EmployeeID string
	Phone      string
	Area       string
}

// User is the aggregate root for an account. All fields are private and
// mutated only through methods that keep the invariants:
//   - valid id, non-empty name, well-formed lower-case email
//   - a bcrypt password hash, never the clear-text password
//   - a valid Role
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	profile      Profile
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
	guard        guard.ConstructorGuard
}

// NewUser creates an active user and hashes password with bcrypt.
//
// Example:
//
//	u, err := user.NewUser(kernel.NewUUID(), "Ana Cruz", "ana@pod.local", "secret1",
//	    user.Messenger, user.Profile{Area: "North"}, time.Now())
func NewUser(
	id kernel.UUID,
	name, email, password string,
	role Role,
	profile Profile,
	now time.Time,
) (*User, error) {
	u := &User{
		guard:     guard.NewConstructorGuard(),
		profile:   profile,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPassword(password),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a User from storage. The password hash is taken as is.
func RestoreUser(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	profile Profile,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		guard:     guard.NewConstructorGuard(),
		profile:   profile,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}

	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// HashPassword returns the bcrypt hash of password using the default cost.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return string(hash), nil
}

// NormalizeEmail trims and lower-cases an address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID       { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() string         { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Profile() Profile      { return u.profile }
func (u *User) IsActive() bool        { return u.active }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
func (u *User) IsMessenger() bool     { return u.role == Messenger }
func (u *User) Can(c Capability) bool { return u.role.Can(c) }

// CheckPassword compares password against the stored hash.
// It returns ErrInvalidCredentials on mismatch.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Update replaces the mutable account fields. Empty name or email leave the
// current value in place; profile fields are copied when non-empty.
func (u *User) Update(name, email string, profile Profile, active *bool, now time.Time) error {
	next := *u

	var err error
	if name != "" {
		err = errors.Join(err, next.setName(name))
	}
	if email != "" {
		err = errors.Join(err, next.setEmail(email))
	}
	if err != nil {
		return err
	}

	if profile.EmployeeID != "" {
		next.profile.EmployeeID = profile.EmployeeID
	}
	if profile.Phone != "" {
		next.profile.Phone = profile.Phone
	}
	if profile.Area != "" {
		next.profile.Area = profile.Area
	}
	if active != nil {
		next.active = *active
	}
	next.updatedAt = now

	*u = next
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
