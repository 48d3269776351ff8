package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"aqarBack/internal/models"
)

var signingKey = func() string {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return v
	}
	return "aqar-dev-secret"
}()

// contextUserID returns the authenticated user id placed in the request
// context by the JWT middleware, or 0 on unauthenticated routes.
func contextUserID(r *http.Request) int {
	if id, ok := r.Context().Value("user_id").(int); ok {
		return id
	}
	return 0
}

func contextIsAdmin(r *http.Request) bool {
	role, _ := r.Context().Value("role").(string)
	return role == "admin"
}

// optionalUserID extracts the caller identity from a bearer token when one is
// present on a public route. Invalid or missing tokens simply mean anonymous.
func optionalUserID(r *http.Request) int {
	tokenString := r.Header.Get("Authorization")
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return 0
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(signingKey), nil
	})
	if err != nil || !token.Valid {
		return 0
	}
	return int(claims.UserID)
}
