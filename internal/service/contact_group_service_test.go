package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/emailbuilder/internal/domain"
)

func TestContactGroupService(t *testing.T) {
	client, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/contact-groups":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Customers","contactCount":12},{"id":2,"name":"Leads"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/contact-groups":
			_, _ = w.Write([]byte(`{"id":3,"name":"VIP","description":"Best customers"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/contact-groups/3":
			_, _ = w.Write([]byte("Group deleted"))
		default:
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"forbidden"}`))
		}
	})
	svc := NewContactGroupService(client, log)
	ctx := context.Background()

	groups, err := svc.ListContactGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.NotNil(t, groups[0].ContactCount)
	assert.Equal(t, int64(12), *groups[0].ContactCount)
	assert.Nil(t, groups[1].ContactCount)

	description := "Best customers"
	created, err := svc.CreateContactGroup(ctx, &domain.CreateContactGroupRequest{Name: " VIP ", Description: &description})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	message, err := svc.DeleteContactGroup(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Group deleted", message)

	_, err = svc.DeleteContactGroup(ctx, 4)
	var backendErr *domain.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.True(t, backendErr.IsUnauthorized())
	assert.Equal(t, "forbidden", backendErr.Message)

	_, err = svc.CreateContactGroup(ctx, &domain.CreateContactGroupRequest{Name: "  "})
	assert.Error(t, err)
}
