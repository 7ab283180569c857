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

package media

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/derhabicht/rmuse/pkg/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrForbidden = errors.New("not permitted to view media")
)

// ValidationError collects every reason a medium was rejected.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, ", ")
}

// Medium is an uploaded file owned by a user.
type Medium struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	URI        string
	Owner      uuid.UUID
	Filetype   string
	Permission openapi.Permission
}

// Client is an in-memory media database.
type Client struct {
	lock sync.RWMutex

	media map[uuid.UUID]*Medium
	byURI map[string]uuid.UUID
}

func New() *Client {
	return &Client{
		media: map[uuid.UUID]*Medium{},
		byURI: map[string]uuid.UUID{},
	}
}

// validate must be called with the lock held.
func (c *Client) validate(request *openapi.MediumWrite) error {
	var reasons []string

	if request.Type == "" {
		reasons = append(reasons, "type is empty")
	}

	if _, ok := c.byURI[request.Uri]; ok {
		reasons = append(reasons, fmt.Sprintf("there is already a file with URI %s", request.Uri))
	}

	if request.Uri == "" {
		reasons = append(reasons, "uri is empty")
	}

	if len(reasons) != 0 {
		return &ValidationError{Reasons: reasons}
	}

	return nil
}

// Create records a medium for owner, permission defaults to public.
func (c *Client) Create(ctx context.Context, owner uuid.UUID, request *openapi.MediumWrite) (*Medium, error) {
	permission := openapi.Public
	if request.Permission != nil {
		permission = *request.Permission
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if err := c.validate(request); err != nil {
		return nil, err
	}

	medium := &Medium{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		URI:        request.Uri,
		Owner:      owner,
		Filetype:   request.Type,
		Permission: permission,
	}

	c.media[medium.ID] = medium
	c.byURI[medium.URI] = medium.ID

	log.FromContext(ctx).Info("media created", "id", medium.ID, "owner", owner)

	return medium, nil
}

func visible(medium *Medium, requester *uuid.UUID) bool {
	if medium.Permission == openapi.Public {
		return true
	}

	return requester != nil && *requester == medium.Owner
}

// Get returns the media with the given IDs, unknown IDs are ignored. Anything
// that is not public is only returned to its owner, a nil requester is
// anonymous.
func (c *Client) Get(ctx context.Context, requester *uuid.UUID, ids []uuid.UUID) ([]*Medium, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	result := make([]*Medium, 0, len(ids))

	for _, id := range ids {
		medium, ok := c.media[id]
		if !ok {
			continue
		}

		if !visible(medium, requester) {
			log.FromContext(ctx).V(1).Info("media access denied", "id", id)

			return nil, fmt.Errorf("%w: %s", ErrForbidden, id)
		}

		result = append(result, medium)
	}

	return result, nil
}

func Convert(in *Medium) *openapi.MediumRead {
	return &openapi.MediumRead{
		Id:         in.ID,
		CreatedAt:  in.CreatedAt,
		Uri:        in.URI,
		Userid:     in.Owner,
		Type:       in.Filetype,
		Permission: in.Permission,
	}
}

func ConvertList(in []*Medium) openapi.MediaRead {
	out := make(openapi.MediaRead, len(in))

	for i := range in {
		out[i] = *Convert(in[i])
	}

	return out
}
