package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	repo "hopyfy/internal/repository"
)

// OTPStore holds one live reset code per email. Implementations must
// expire entries (the Redis store uses a key TTL) so a stale code can
// never come back from Get.
type OTPStore interface {
	Put(ctx context.Context, email string, code string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

type Mailer interface {
	Send(to string, subject string, body string) error
}

type PasswordResetUsecase struct {
	userRepo   repo.UserRepository
	otpStore   OTPStore
	mailer     Mailer
	bcryptCost int
}

func NewPasswordResetUsecase(userRepo repo.UserRepository, otpStore OTPStore, mailer Mailer) *PasswordResetUsecase {
	return &PasswordResetUsecase{
		userRepo:   userRepo,
		otpStore:   otpStore,
		mailer:     mailer,
		bcryptCost: 12,
	}
}

// Request generates a 6-digit code and emails it. The response is the
// same whether or not the account exists.
func (u *PasswordResetUsecase) Request(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return NewHTTPError(http.StatusBadRequest, "email is required")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return nil
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	code, err := generateOTP()
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "otp error")
	}

	if err := u.otpStore.Put(ctx, email, code); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "otp error")
	}

	body := fmt.Sprintf("Hi %s,\n\nYour password reset code is %s. It expires in 5 minutes.\n", user.Username, code)
	if err := u.mailer.Send(email, "Reset Your Password", body); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "mail error")
	}

	return nil
}

type ConfirmResetInput struct {
	Email    string
	OTP      string
	Password string
}

// Confirm validates the code, updates the credential and consumes the
// code so it cannot be replayed.
func (u *PasswordResetUsecase) Confirm(ctx context.Context, in ConfirmResetInput) error {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.OTP == "" {
		return NewHTTPError(http.StatusBadRequest, "email and otp are required")
	}
	if len(in.Password) < 8 {
		return NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	stored, err := u.otpStore.Get(ctx, email)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "otp error")
	}
	if stored == "" || stored != in.OTP {
		return NewHTTPError(http.StatusBadRequest, "Invalid or expired code")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusBadRequest, "Invalid or expired code")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	if err := u.userRepo.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.otpStore.Delete(ctx, email); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "otp error")
	}

	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
