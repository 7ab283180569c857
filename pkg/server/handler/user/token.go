/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenLifetime is how long an issued token remains valid.
const DefaultTokenLifetime = 168 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Issuer signs and verifies session tokens.
type Issuer struct {
	key      []byte
	lifetime time.Duration
}

func NewIssuer(key []byte, lifetime time.Duration) *Issuer {
	if lifetime == 0 {
		lifetime = DefaultTokenLifetime
	}

	return &Issuer{
		key:      key,
		lifetime: lifetime,
	}
}

// Issue returns an HS256 token whose ID claim is the user ID.
func (i *Issuer) Issue(user *User) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.lifetime)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

// Verify checks the token and returns the user ID it was issued to.
func (i *Issuer) Verify(token string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	keyFunc := func(*jwt.Token) (interface{}, error) {
		return i.key, nil
	}

	if _, err := jwt.ParseWithClaims(token, claims, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: could not identify the user", ErrInvalidToken)
	}

	return id, nil
}
