package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Hazen1Yang/pathfinder-backend/store"
)

const (
	// DeviceIDHeader scopes anonymous requests to one device, standing in
	// for that device's browser storage.
	DeviceIDHeader = "X-Device-ID"

	ownerContextKey = "owner"
)

func parseBearer(c *gin.Context) (userID, email string, err error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "", errors.New("authorization header required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return "", "", errors.New("server misconfigured: JWT_SECRET not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid claims")
	}

	userID, _ = claims["userId"].(string)
	email, _ = claims["email"].(string)
	if userID == "" {
		return "", "", errors.New("userId claim missing")
	}
	return userID, email, nil
}

// AuthRequired rejects requests without a valid bearer token and binds the
// account scope into the context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, email, err := parseBearer(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set("userID", userID)
		c.Set("email", email)
		c.Set(ownerContextKey, store.Owner{UserID: userID})
		c.Next()
	}
}

// ResolveScope accepts both signed-in and anonymous callers. With a valid
// token the scope is the account; otherwise the device id header names the
// local scope. A request with neither has no storage to act on.
func ResolveScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			userID, email, err := parseBearer(c)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.Set("userID", userID)
			c.Set("email", email)
			c.Set(ownerContextKey, store.Owner{UserID: userID})
			c.Next()
			return
		}

		device := strings.TrimSpace(c.GetHeader(DeviceIDHeader))
		if device == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "sign in or supply " + DeviceIDHeader})
			return
		}
		c.Set(ownerContextKey, store.Owner{DeviceKey: device})
		c.Next()
	}
}

// OwnerFromContext returns the scope bound by AuthRequired or ResolveScope.
func OwnerFromContext(c *gin.Context) store.Owner {
	if v, ok := c.Get(ownerContextKey); ok {
		if owner, ok := v.(store.Owner); ok {
			return owner
		}
	}
	return store.Owner{}
}

// TokenToOwner resolves a raw token string to an account scope. The
// websocket feed uses it for mid-connection sign-in messages.
func TokenToOwner(tokenString string) (store.Owner, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return store.Owner{}, errors.New("server misconfigured: JWT_SECRET not set")
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return store.Owner{}, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return store.Owner{}, errors.New("invalid claims")
	}
	userID, _ := claims["userId"].(string)
	if userID == "" {
		return store.Owner{}, errors.New("userId claim missing")
	}
	return store.Owner{UserID: userID}, nil
}
