package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"boba-pos/config"
	"boba-pos/models"
	"boba-pos/utils"
)

type EmployeeLoginResult struct {
	Token    string
	Employee models.Employee
}

type CustomerSignupInput struct {
	Name        string
	PhoneNumber string
	Email       string
}

type AuthService interface {
	EmployeeLogin(ctx context.Context, email, password string) (*EmployeeLoginResult, error)
	CustomerSignup(ctx context.Context, input CustomerSignupInput) (*models.Customer, error)
	CustomerLogin(ctx context.Context, phone string) (*models.Customer, error)
}

type authService struct {
	db  *gorm.DB
	jwt config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwt config.JWTConfig) AuthService {
	return &authService{db: db, jwt: jwt}
}

// EmployeeLogin verifies the bcrypt hash and issues a JWT carrying the
// employee's position. Unknown email and bad password collapse into
// the same error so the response doesn't reveal which one it was.
func (s *authService) EmployeeLogin(ctx context.Context, email, password string) (*EmployeeLoginResult, error) {
	var employee models.Employee
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwt.Secret, employee.ID, employee.Position, s.jwt.TTL)
	if err != nil {
		return nil, err
	}

	return &EmployeeLoginResult{Token: token, Employee: employee}, nil
}

func (s *authService) CustomerSignup(ctx context.Context, input CustomerSignupInput) (*models.Customer, error) {
	db := s.db.WithContext(ctx)

	normalized := utils.NormalizePhoneNumber(input.PhoneNumber)
	if normalized == "" {
		return nil, ErrPhoneRequired
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := findCustomerByPhone(db, normalized); err == nil {
		return nil, ErrDuplicatePhone
	} else if !errors.Is(err, ErrCustomerNotFound) {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	customer := models.Customer{
		Name:        strings.TrimSpace(input.Name),
		PhoneNumber: normalized,
		Email:       email,
	}
	if err := db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *authService) CustomerLogin(ctx context.Context, phone string) (*models.Customer, error) {
	return findCustomerByPhone(s.db.WithContext(ctx), phone)
}
