package backend

import (
	"context"
	"fmt"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
)

// BlogInput carries the admin CRUD form fields for a blog post.
type BlogInput struct {
	Title     string `json:"title" validate:"required,max=255"`
	Content   string `json:"content" validate:"required"`
	Author    string `json:"author" validate:"required,max=255"`
	ImageName string `json:"imageName,omitempty"`
	Image     []byte `json:"-"`
}

func (in BlogInput) fields() map[string]string {
	return map[string]string{
		"title":   in.Title,
		"content": in.Content,
		"author":  in.Author,
	}
}

// Blogs lists all blog posts.
func (c *Client) Blogs(ctx context.Context) ([]models.BlogPost, error) {
	resp, err := httpGet(ctx, c.url("/blog/getblogs"), c.timeout)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, statusError(resp, "failed to fetch blog posts")
	}

	var posts []models.BlogPost
	if err := decodeList(resp.Raw, []string{"blogs", "posts"}, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// AddBlog creates a blog post via the multipart admin endpoint.
func (c *Client) AddBlog(ctx context.Context, in BlogInput) error {
	resp, err := httpPostMultipart(ctx, c.url("/blog/addblogs"), in.fields(), "image", in.ImageName, in.Image, c.timeout)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(resp, "failed to add blog post")
	}
	return nil
}

// UpdateBlog replaces a blog post's fields (and optionally its image).
func (c *Client) UpdateBlog(ctx context.Context, id string, in BlogInput) error {
	if id == "" {
		return fmt.Errorf("backend: update blog: empty id")
	}

	resp, err := httpPutMultipart(ctx, c.url("/blog/updateblog/"+id), in.fields(), "image", in.ImageName, in.Image, c.timeout)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(resp, "failed to update blog post")
	}
	return nil
}

// DeleteBlog removes a blog post.
func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("backend: delete blog: empty id")
	}

	resp, err := httpDelete(ctx, c.url("/blog/deleteblog/"+id), c.timeout)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(resp, "failed to delete blog post")
	}
	return nil
}
