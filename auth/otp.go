package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/mailer"
	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

const otpTTL = 10 * time.Minute

// OTPStore keeps password-reset codes in Redis with a TTL, so codes survive
// restarts and work across instances.
type OTPStore struct {
	rdb *redis.Client
}

func NewOTPStore(rdb *redis.Client) *OTPStore {
	return &OTPStore{rdb: rdb}
}

func otpKey(email string) string {
	return "otp:" + email
}

// Issue stores and returns a fresh 6-digit code for the email.
func (s *OTPStore) Issue(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())
	if err := s.rdb.Set(ctx, otpKey(email), code, otpTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Consume validates and invalidates the code in one step.
func (s *OTPStore) Consume(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.GetDel(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == code, nil
}

// ForgotPassword emails a reset code to an existing account.
func ForgotPassword(db *gorm.DB, otp *OTPStore, mail services.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No account with that email"})
			return
		}

		code, err := otp.Issue(c.Request.Context(), input.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reset code"})
			return
		}
		if err := mail.Send(input.Email, "Your password reset code", mailer.OTPBody(code)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reset email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Reset code sent"})
	}
}

// ResetPassword consumes the OTP and stores the new password hash.
func ResetPassword(db *gorm.DB, otp *OTPStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email       string `json:"email" binding:"required,email"`
			OTP         string `json:"otp" binding:"required"`
			NewPassword string `json:"new_password" binding:"required,min=6"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ok, err := otp.Consume(c.Request.Context(), input.Email, input.OTP)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify reset code"})
			return
		}
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset code"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		if err := db.Model(&models.User{}).Where("email = ?", input.Email).
			Update("password", string(hash)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}
