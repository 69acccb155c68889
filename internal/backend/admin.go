package backend

import (
	"context"
	"encoding/json"
)

// AdminIdentity is the display payload returned by a successful login.
// The backend is loose about its response shape, so this is best-effort:
// a missing identity object falls back to the submitted username.
type AdminIdentity struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// Login submits credentials. A 2xx response means the backend accepted
// them; no bearer token is issued by this backend.
func (c *Client) Login(ctx context.Context, username, password string) (*AdminIdentity, error) {
	body := map[string]string{"username": username, "password": password}

	resp, err := httpPostJSON(ctx, c.url("/admin/login"), body, c.timeout)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, statusError(resp, "invalid username or password")
	}

	// The identity may live under admin, user or data; fall back to the
	// submitted username when none is present.
	identity := &AdminIdentity{Username: username, Role: "admin"}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(resp.Raw, &envelope); err == nil {
		for _, key := range []string{"admin", "user", "data"} {
			inner, ok := envelope[key]
			if !ok {
				continue
			}
			var id AdminIdentity
			if err := json.Unmarshal(inner, &id); err == nil && id.Username != "" {
				identity = &id
				break
			}
		}
	}

	if identity.Role == "" {
		identity.Role = "admin"
	}
	return identity, nil
}

// UpdatePassword changes the admin password. The field names (including the
// lowercase "newpassword") are fixed by the deployed backend.
func (c *Client) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"oldPassword": oldPassword,
		"newpassword": newPassword,
	}

	resp, err := httpPutJSON(ctx, c.url("/admin/update"), body, c.timeout)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(resp, "failed to update password")
	}
	return nil
}
