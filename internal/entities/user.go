package entities

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used when hashing user passwords
var PasswordCost = bcrypt.DefaultCost

// userAttrs lists the writable attributes in the order updates are applied
var userAttrs = []string{"first_name", "last_name", "email", "password", "is_admin"}

// User represents a registered user
type User struct {
	BaseModel
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Don't expose password hash in JSON
	IsAdmin      bool   `json:"is_admin"`
}

// NewUser validates fields and builds a User with a fresh identity.
// is_admin is never taken from input at creation time.
func NewUser(fields Fields) (*User, error) {
	firstName, err := ValidateName(fields["first_name"], "first_name", "First name")
	if err != nil {
		return nil, err
	}
	lastName, err := ValidateName(fields["last_name"], "last_name", "Last name")
	if err != nil {
		return nil, err
	}
	email, err := ValidateEmail(fields["email"])
	if err != nil {
		return nil, err
	}
	password, err := ValidatePassword(fields["password"])
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseModel:    newBaseModel(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	}, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored hash
func (u *User) VerifyPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// Update applies every known attribute in fields, all or nothing, then refreshes UpdatedAt.
// Unknown keys, id and created_at are ignored.
func (u *User) Update(fields Fields) error {
	staged := *u
	for _, key := range userAttrs {
		value, ok := fields[key]
		if !ok {
			continue
		}
		var err error
		switch key {
		case "first_name":
			staged.FirstName, err = ValidateName(value, key, "First name")
		case "last_name":
			staged.LastName, err = ValidateName(value, key, "Last name")
		case "email":
			staged.Email, err = ValidateEmail(value)
		case "password":
			var password string
			if password, err = ValidatePassword(value); err == nil {
				staged.PasswordHash, err = hashPassword(password)
			}
		case "is_admin":
			staged.IsAdmin, err = ValidateIsAdmin(value)
		}
		if err != nil {
			return err
		}
	}
	*u = staged
	u.Touch()
	return nil
}

// Attr returns the named attribute; "password" yields the stored hash
func (u *User) Attr(name string) (interface{}, bool) {
	switch name {
	case "first_name":
		return u.FirstName, true
	case "last_name":
		return u.LastName, true
	case "email":
		return u.Email, true
	case "password":
		return u.PasswordHash, true
	case "is_admin":
		return u.IsAdmin, true
	}
	return u.baseAttr(name)
}

// SetAttr assigns without validation. The password can only change through Update.
func (u *User) SetAttr(name string, value interface{}) bool {
	switch name {
	case "first_name", "last_name", "email":
		s, ok := value.(string)
		if !ok {
			return false
		}
		switch name {
		case "first_name":
			u.FirstName = s
		case "last_name":
			u.LastName = s
		default:
			u.Email = s
		}
		return true
	case "is_admin":
		b, ok := toBool(value)
		if ok {
			u.IsAdmin = b
		}
		return ok
	}
	return false
}

// ToMap projects the user; the password never appears
func (u *User) ToMap() map[string]interface{} {
	m := u.baseMap()
	m["first_name"] = u.FirstName
	m["last_name"] = u.LastName
	m["email"] = u.Email
	m["is_admin"] = u.IsAdmin
	delete(m, "password")
	return m
}

// Clone returns an independent copy
func (u *User) Clone() *User {
	c := *u
	return &c
}
