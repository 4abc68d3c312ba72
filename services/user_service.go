package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type ProfileInput struct {
	FullName       string `json:"full_name"`
	CareerInterest string `json:"career_interest"`
	MFAEnabled     *bool  `json:"mfa_enabled"`
}

func (s *UserService) GetProfile(userID string) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"user_id":         user.UserID,
		"email":           user.Email,
		"full_name":       user.FullName,
		"career_interest": user.CareerInterest,
		"quiz_scores":     user.QuizScores,
		"mfa_enabled":     user.MFAEnabled,
	}, nil
}

func (s *UserService) UpdateProfile(userID string, input ProfileInput) error {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return errors.New("user not found")
	}

	if name := strings.TrimSpace(input.FullName); name != "" {
		user.FullName = name
	}
	if interest := strings.TrimSpace(input.CareerInterest); interest != "" {
		if _, ok := TaskCatalog[interest]; !ok {
			return errors.New("unknown career interest")
		}
		user.CareerInterest = interest
	}
	if input.MFAEnabled != nil {
		user.MFAEnabled = *input.MFAEnabled
	}
	return s.db.Save(&user).Error
}

// CareerInterest resolves the user's saved interest slug; empty when the
// quiz has not been taken.
func (s *UserService) CareerInterest(userID string) (string, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return "", err
	}
	return user.CareerInterest, nil
}
