package main

import (
	"crypto/ed25519"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pattaranan1/Twitter-Cloning/models"
)

func IssueToken(userID int64, config models.AppConfig) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwt.MapClaims{
		"iss": "microblog",
		"sub": strconv.FormatInt(userID, 10),
		"exp": time.Now().Add(time.Hour * 1).Unix(),
		"aud": []string{"web"},
	})
	return token.SignedString(ed25519.PrivateKey(config.JWTPrivateKey))
}

func ValidateToken(token string, config models.AppConfig) (int64, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithAudience("web"),
		jwt.WithIssuer("microblog"),
	)
	claims := jwt.RegisteredClaims{}
	parse, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return ed25519.PublicKey(config.JWTPublicKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, errors.New("token expired")
		}
		return 0, err
	}
	if !parse.Valid || claims.Subject == "" {
		return 0, errors.New("token is not valid")
	}
	return strconv.ParseInt(claims.Subject, 10, 64)
}
