package store

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"kmunity/internal/models"
)

var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrDuplicateUser is returned when the unique index trips on insert,
	// i.e. a concurrent registration won the race after the pre-checks passed.
	ErrDuplicateUser = errors.New("user already exists")
)

// CreateUser inserts a new user. The caller is expected to have run the
// pre-checks that produce the field-specific duplicate errors; the unique
// indexes remain the authoritative guard.
func CreateUser(db *gorm.DB, user *models.User) error {
	if err := db.Where("email = ?", user.Email).First(&models.User{}).Error; err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := db.Where("username = ?", user.Username).First(&models.User{}).Error; err == nil {
		return ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// UserByEmail looks a user up for login. Returns gorm.ErrRecordNotFound
// when no account exists for the address.
func UserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return false
}
