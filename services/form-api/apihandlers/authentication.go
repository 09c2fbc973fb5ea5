package apihandlers

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	userDB "github.com/Nithin0620/DynoForm/pkg/db/users"
	jwthandling "github.com/Nithin0620/DynoForm/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.GET("/airtable", h.initiateAirtableOAuth)
		authGroup.GET("/airtable/callback", h.airtableOAuthCallback)
	}
}

func (h *HttpEndpoints) initiateAirtableOAuth(c *gin.Context) {
	stateBytes := make([]byte, 8)
	if _, err := rand.Read(stateBytes); err != nil {
		slog.Error("failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start authorization"})
		return
	}
	state := hex.EncodeToString(stateBytes)

	c.Redirect(http.StatusFound, h.airtableOAuth.BuildAuthorizeURL(state))
}

func (h *HttpEndpoints) airtableOAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		slog.Warn("OAuth callback without authorization code")
		c.JSON(http.StatusBadRequest, gin.H{"error": "authorization code not provided"})
		return
	}

	tokens, err := h.airtableOAuth.ExchangeCode(code)
	if err != nil {
		slog.Error("token exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}

	userInfo, err := h.airtableOAuth.GetCurrentUser(tokens.AccessToken)
	if err != nil {
		slog.Error("failed to fetch Airtable user info", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}

	user, err := h.userDBConn.GetUserByAirtableUserID(userInfo.ID)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			slog.Error("failed to look up user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
			return
		}

		user, err = h.userDBConn.CreateUser(userDB.User{
			AirtableUserID: userInfo.ID,
			Name:           strings.SplitN(userInfo.Email, "@", 2)[0],
			Email:          userInfo.Email,
			AccessToken:    tokens.AccessToken,
			RefreshToken:   tokens.RefreshToken,
		})
		if err != nil {
			slog.Error("failed to create user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
			return
		}
	} else {
		if err := h.userDBConn.UpdateUserOnLogin(user.ID.Hex(), userInfo.Email, tokens.AccessToken, tokens.RefreshToken); err != nil {
			slog.Error("failed to update user on login", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
			return
		}
	}

	token, err := jwthandling.GenerateNewUserToken(h.tokenExpiresIn, user.ID.Hex(), h.tokenSignKey)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}

	slog.Info("user logged in via Airtable OAuth", slog.String("userID", user.ID.Hex()))

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": userInfo.Email,
		},
	})
}
