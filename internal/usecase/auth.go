package usecase

import (
	"context"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims - a struct that will be decoded from the JWT
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type authUC struct {
	jwtKey []byte
}

// NewAuthUC builds the token verifier. Tokens are issued elsewhere; this
// service only validates them against the shared key.
func NewAuthUC(jwtKey string) domain.AuthUC {
	return authUC{jwtKey: []byte(jwtKey)}
}

func (au authUC) Verify(ctx context.Context, tokenStr string) (domain.Identity, error) {
	if tokenStr == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return au.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	userId, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	return domain.Identity{UserID: userId}, nil
}
