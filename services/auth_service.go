package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Hazen1Yang/pathfinder-backend/models"
	"github.com/Hazen1Yang/pathfinder-backend/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	db     *gorm.DB
	mailer *utils.Mailer
}

func NewAuthService(db *gorm.DB, mailer *utils.Mailer) *AuthService {
	return &AuthService{db: db, mailer: mailer}
}

func (s *AuthService) Register(email, password, fullName string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	base := strings.ToLower(strings.ReplaceAll(fullName, " ", ""))
	if base == "" {
		base = "student"
	}
	userID := fmt.Sprintf("%s%d", base, rand.Intn(100000))

	user := models.User{
		UserID:   userID,
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) FindByUserID(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the password and returns a signed token, or sends an
// MFA code by mail when the account has MFA enabled. The second return value
// reports whether MFA is pending.
func (s *AuthService) Authenticate(email, password string) (string, bool, error) {
	user, err := s.FindByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", false, ErrInvalidCredentials
	}

	if user.MFAEnabled {
		code := fmt.Sprintf("%06d", rand.Intn(1000000))
		user.MFACode = code
		if err := s.db.Save(user).Error; err != nil {
			return "", false, err
		}
		if err := s.mailer.SendMFAEmail(user.Email, code); err != nil {
			return "", false, err
		}
		return "", true, nil
	}

	token, err := utils.GenerateJWT(user.UserID, user.Email)
	if err != nil {
		return "", false, err
	}
	return token, false, nil
}

func (s *AuthService) VerifyMFA(email, code string) (string, error) {
	user, err := s.FindByEmail(email)
	if err != nil || user.MFACode == "" || user.MFACode != code {
		return "", ErrInvalidCredentials
	}

	user.MFACode = ""
	if err := s.db.Save(user).Error; err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.UserID, user.Email)
}

// StartPasswordReset issues a short-lived reset code and mails it. Unknown
// emails are not reported to the caller.
func (s *AuthService) StartPasswordReset(email string) error {
	user, err := s.FindByEmail(email)
	if err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(user).Error; err != nil {
		return err
	}
	return s.mailer.SendResetEmail(user.Email, token)
}

func (s *AuthService) ResetPassword(email, token, newPassword string) error {
	user, err := s.FindByEmail(email)
	if err != nil || user.ResetToken == "" || user.ResetToken != token {
		return errors.New("invalid reset code")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errors.New("reset code expired")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(user).Error
}
