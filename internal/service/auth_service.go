package service

import (
	"context"
	"errors"
	"time"

	"kidlearn_backend/internal/config"
	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/repository"
	"kidlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Activity ActivityRecorder
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, activity ActivityRecorder, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Activity: activity,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	// Admin accounts are created by other admins, never self-assigned.
	if user.Role != model.Student && user.Role != model.Parent {
		return util.Validationf("role must be student or parent")
	}

	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

// Login verifies credentials, maintains the consecutive-day login streak
// and drops a login entry into the activity feed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if user.Disabled {
		return "", nil, util.ErrPermissionDenied
	}

	now := time.Now()
	if sameDay(user.LastLogin, now) {
		// Streak already counted today.
	} else if now.Sub(user.LastLogin) < 48*time.Hour {
		user.LoginStreak++
	} else {
		user.LoginStreak = 1
	}
	user.LastLogin = now
	if err := s.UserRepo.Update(user); err != nil {
		return "", nil, err
	}

	entry := model.ActivityEntry{
		UserEmail: user.Email,
		UserName:  util.DisplayName(user.Email),
		Role:      user.Role,
		Action:    model.ActionLogin,
	}
	if err := s.Activity.Record(ctx, entry); err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
