package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterInput struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
}

// AuthResult is returned by register and login: the user identity plus
// a signed bearer token.
type AuthResult struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func (s *UserService) Register(in RegisterInput) (*AuthResult, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", ErrInvalidInput)
	}
	if in.ConfirmPassword != "" && in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", in.Username, email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: in.Username, Email: email, Password: hashed}
	if err := s.db.Create(&user).Error; err != nil {
		// A registration racing past the count check lands on the
		// unique index instead.
		if duplicateKey(err) {
			return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
		}
		return nil, err
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{UserID: user.ID, Username: user.Username, Email: user.Email, Token: token}, nil
}

func (s *UserService) Login(email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, fmt.Errorf("%w: wrong password", ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{UserID: user.ID, Username: user.Username, Email: user.Email, Token: token}, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

type UpdateUserInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

func (s *UserService) Update(id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil && *in.Username != "" {
		user.Username = *in.Username
	}
	if in.Email != nil && *in.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
