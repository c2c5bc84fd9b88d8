package handler

import (
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"lendcircle/internal/model"
)

// tokenIdentity is the caller identity carried in a verified access token.
type tokenIdentity struct {
	UserID uint
	Email  string
	Role   model.UserRole
}

// currentClaims extracts the identity claims put in context by the echo-jwt
// middleware. echo-jwt parses tokens with golang-jwt v5, so the context value
// is a v5 token holding MapClaims.
func currentClaims(c echo.Context) (*tokenIdentity, error) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	uid, ok := claims["user_id"].(float64)
	if !ok || uid <= 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &tokenIdentity{
		UserID: uint(uid),
		Email:  email,
		Role:   model.UserRole(role),
	}, nil
}
