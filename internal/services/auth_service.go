package services

import (
	"errors"

	"yoldas/internal/models"
	"yoldas/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(name, email, password string) (*models.Owner, error)
	Signin(email, password string) (*models.Owner, error)
}

type authService struct {
	ownerRepo repository.OwnerRepository
}

func NewAuthService(ownerRepo repository.OwnerRepository) AuthService {
	return &authService{ownerRepo: ownerRepo}
}

func (s *authService) Signup(name, email, password string) (*models.Owner, error) {
	_, err := s.ownerRepo.GetByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	owner := &models.Owner{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.ownerRepo.Create(owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *authService) Signin(email, password string) (*models.Owner, error) {
	owner, err := s.ownerRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return owner, nil
}
