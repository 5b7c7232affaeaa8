// Package token mints and verifies the auth tokens stored in a user's
// tokens array. A token is only honored while the store still holds it.
package token

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

type Claims struct {
	UserID string `json:"user_id"`
	Access string `json:"access"`
	jwt.RegisteredClaims
}

// New signs a token for the user. The random jti keeps two logins in the
// same second from producing identical tokens.
func New(userID primitive.ObjectID) (string, error) {
	claims := Claims{
		UserID: userID.Hex(),
		Access: "auth",
		RegisteredClaims: jwt.RegisteredClaims{
			ID: primitive.NewObjectID().Hex(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Parse verifies the signature and returns the embedded user id.
func Parse(tokenStr string) (primitive.ObjectID, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return secret(), nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !parsed.Valid || claims.Access != "auth" {
		return primitive.NilObjectID, errors.New("invalid auth token")
	}
	return primitive.ObjectIDFromHex(claims.UserID)
}
