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
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"golang.org/x/crypto/bcrypt"

	"github.com/derhabicht/rmuse/pkg/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email in use")
	ErrUsernameInUse      = errors.New("username in use")
	ErrNotFound           = errors.New("user not found")
)

// ConflictError reports that a unique attribute is already taken.
type ConflictError struct {
	Value string
	Err   error
}

func (e *ConflictError) Error() string {
	if errors.Is(e.Err, ErrUsernameInUse) {
		return fmt.Sprintf("username %s is already in use", e.Value)
	}

	return fmt.Sprintf("a user with email %s already exists", e.Value)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// User is a registered account.
type User struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	Email        string
	Username     string
	FirstName    *string
	LastName     *string
	PasswordHash []byte
}

// Client is an in-memory user database.
type Client struct {
	lock sync.RWMutex

	users      map[uuid.UUID]*User
	byEmail    map[string]uuid.UUID
	byUsername map[string]uuid.UUID

	// cost is the bcrypt work factor.
	cost int
}

func New() *Client {
	return &Client{
		users:      map[uuid.UUID]*User{},
		byEmail:    map[string]uuid.UUID{},
		byUsername: map[string]uuid.UUID{},
		cost:       bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt work factor, tests use bcrypt.MinCost.
func (c *Client) WithCost(cost int) *Client {
	c.cost = cost
	return c
}

// Create registers a new user, emails are matched case insensitively.
func (c *Client) Create(ctx context.Context, request *openapi.UserWrite) (*User, error) {
	log := log.FromContext(ctx)

	email := strings.ToLower(string(request.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), c.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.byEmail[email]; ok {
		return nil, &ConflictError{Value: email, Err: ErrEmailInUse}
	}

	if _, ok := c.byUsername[request.Username.Value]; ok {
		return nil, &ConflictError{Value: request.Username.Value, Err: ErrUsernameInUse}
	}

	user := &User{
		ID:           uuid.New(),
		CreatedAt:    time.Now().UTC(),
		Email:        email,
		Username:     request.Username.Value,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: hash,
	}

	c.users[user.ID] = user
	c.byEmail[email] = user.ID
	c.byUsername[user.Username] = user.ID

	log.Info("user created", "id", user.ID, "username", user.Username)

	return user, nil
}

// Authenticate checks credentials, unknown users and bad passwords are
// indistinguishable to the caller.
func (c *Client) Authenticate(ctx context.Context, request *openapi.LoginRequest) (*User, error) {
	email := strings.ToLower(request.Email)

	c.lock.RLock()
	id, ok := c.byEmail[email]
	user := c.users[id]
	c.lock.RUnlock()

	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(request.Password)); err != nil {
		log.FromContext(ctx).V(1).Info("password mismatch", "id", user.ID)

		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Get looks up a user by ID.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	user, ok := c.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return user, nil
}

// Convert renders a user for the API, the password hash never leaves here.
func Convert(in *User) *openapi.UserRead {
	return &openapi.UserRead{
		UserId:    in.ID,
		Email:     openapi_types.Email(in.Email),
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CreatedAt: in.CreatedAt,
	}
}
