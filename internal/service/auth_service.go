package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fleet-service/internal/auth"
	"fleet-service/internal/model"
)

type AuthService struct {
	users  UserStore
	issuer *auth.Issuer
}

func NewAuthService(users UserStore, issuer *auth.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	var fieldErrs FieldErrors
	fieldErrs = requireField(fieldErrs, "firstname", input.Firstname)
	fieldErrs = requireField(fieldErrs, "lastname", input.Lastname)
	fieldErrs = requireField(fieldErrs, "email", input.Email)
	fieldErrs = requireField(fieldErrs, "password", input.Password)
	if len(fieldErrs) > 0 {
		return nil, "", fieldErrs
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Email:     input.Email,
		Password:  hash,
		Role:      model.RoleDriver,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", storeErr(err)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*model.User, string, error) {
	var fieldErrs FieldErrors
	fieldErrs = requireField(fieldErrs, "email", input.Email)
	fieldErrs = requireField(fieldErrs, "password", input.Password)
	if len(fieldErrs) > 0 {
		return nil, "", fieldErrs
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(user.Password, input.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
