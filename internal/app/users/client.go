package users

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/apostle2t/jobboard/pkg/httpclient"
)

type Client interface {
	Me(ctx context.Context) (Profile, error)
	Get(ctx context.Context, id int64) (Profile, error)
	Update(ctx context.Context, id int64, data UpdateData) (Profile, error)
	UploadProfilePicture(ctx context.Context, id int64, filename string, r io.Reader) (UploadPictureResponse, error)
	DeleteProfilePicture(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type client struct {
	http *httpclient.Client
}

func New(http *httpclient.Client) Client {
	return &client{http: http}
}

func (c *client) Me(ctx context.Context) (Profile, error) {
	var out Profile
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/users/me", nil, nil, &out); err != nil {
		return Profile{}, fmt.Errorf("users.Me: %w", err)
	}
	return out, nil
}

func (c *client) Get(ctx context.Context, id int64) (Profile, error) {
	var out Profile
	if err := c.http.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, nil, &out); err != nil {
		return Profile{}, fmt.Errorf("users.Get: %w", err)
	}
	return out, nil
}

func (c *client) Update(ctx context.Context, id int64, data UpdateData) (Profile, error) {
	var out Profile
	if err := c.http.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), nil, data, &out); err != nil {
		return Profile{}, fmt.Errorf("users.Update: %w", err)
	}
	return out, nil
}

func (c *client) UploadProfilePicture(ctx context.Context, id int64, filename string, r io.Reader) (UploadPictureResponse, error) {
	var out UploadPictureResponse
	path := fmt.Sprintf("/api/users/%d/profile-picture", id)
	if err := c.http.DoMultipart(ctx, http.MethodPost, path, "file", filename, r, &out); err != nil {
		return UploadPictureResponse{}, fmt.Errorf("users.UploadProfilePicture: %w", err)
	}
	return out, nil
}

func (c *client) DeleteProfilePicture(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/users/%d/profile-picture", id)
	if err := c.http.DoJSON(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("users.DeleteProfilePicture: %w", err)
	}
	return nil
}

func (c *client) Delete(ctx context.Context, id int64) error {
	if err := c.http.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil, nil); err != nil {
		return fmt.Errorf("users.Delete: %w", err)
	}
	return nil
}
