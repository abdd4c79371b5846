package repositories

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"gorm.io/gorm"
)

type IUserRepository interface {
	Create(user *entities.User) error
	FindByEmail(email string) (*entities.User, error)
	FindByAuthID(authID string) (*entities.User, error)
	FindByID(id int64) (*entities.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create insere um novo usuário; e-mail duplicado vira Conflict.
func (r *UserRepository) Create(user *entities.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return conflictOr(err, "Email already registered")
	}
	return nil
}

func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return &user, nil
}

func (r *UserRepository) FindByAuthID(authID string) (*entities.User, error) {
	var user entities.User
	if err := r.db.Where("auth0_id = ?", authID).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id int64) (*entities.User, error) {
	var user entities.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return &user, nil
}
