package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

type googleClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Audience string `json:"aud"`
}

// verifyGoogleIDToken validates the ID token against Google's tokeninfo
// endpoint and returns the claims.
func verifyGoogleIDToken(idToken string) (*googleClaims, error) {
	resp, err := http.Get(tokenInfoURL + "?id_token=" + url.QueryEscape(idToken))
	if err != nil {
		return nil, fmt.Errorf("failed to reach Google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("invalid Google ID token")
	}

	var claims googleClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse tokeninfo response: %w", err)
	}
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" && claims.Audience != clientID {
		return nil, errors.New("token was issued for a different client")
	}
	if claims.Email == "" {
		return nil, errors.New("token carries no email claim")
	}
	return &claims, nil
}

// GoogleLogin signs a user in with a Google ID token, creating the account
// on first login.
func GoogleLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			IDToken string `json:"idToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "idToken is required"})
			return
		}

		claims, err := verifyGoogleIDToken(input.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		err = db.Where("email = ?", claims.Email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				ID:        uuid.NewString(),
				Email:     claims.Email,
				Name:      claims.Name,
				Image:     claims.Picture,
				Provider:  "google",
				CreatedAt: time.Now(),
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			if err := db.Model(&user).Updates(models.User{Name: claims.Name, Image: claims.Picture}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  user,
			"token": IssueJWT(user.ID, user.Email, user.IsAdmin),
		})
	}
}
