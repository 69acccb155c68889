package controllers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/ahmadsvu/stationery-hub-frontend/internal/adminsession"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ctx"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/middleware"
)

// AdminController covers login, session introspection and the management
// endpoints proxied to the shop backend.
type AdminController struct {
	sessions *adminsession.Manager
	backend  *backend.Client
}

func NewAdminController(sessions *adminsession.Manager, b *backend.Client) *AdminController {
	return &AdminController{sessions: sessions, backend: b}
}

// ─── Session ─────────────────────────────────────────────────────────────────

// Login authenticates against the backend and sets the session cookie.
func (ctl *AdminController) Login(c *ctx.Context) {
	var input struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if !c.BindJSON(&input) {
		return
	}

	session, err := ctl.sessions.Login(c.Context(), input.Username, input.Password)
	if err != nil {
		ctl.backendError(c, err, "Login failed")
		return
	}

	c.SetCookie(middleware.SessionCookie, session.Token, 0, "/", "", false, true)
	c.Success(map[string]any{
		"username":   session.Username,
		"role":       session.Role,
		"loggedInAt": session.LoggedInAt,
	})
}

// Logout clears the local session and the cookie. Always succeeds.
func (ctl *AdminController) Logout(c *ctx.Context) {
	if err := ctl.sessions.Logout(); err != nil {
		c.Error(http.StatusInternalServerError, "Could not clear session")
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Success(map[string]any{"loggedOut": true})
}

// Whoami reports the current session.
func (ctl *AdminController) Whoami(c *ctx.Context) {
	session, err := ctl.sessions.Current()
	if err != nil {
		c.Unauthorized("Not logged in")
		return
	}
	c.Success(map[string]any{
		"username":   session.Username,
		"role":       session.Role,
		"loggedInAt": session.LoggedInAt,
	})
}

// ChangePassword updates the admin credential upstream.
func (ctl *AdminController) ChangePassword(c *ctx.Context) {
	var input struct {
		OldPassword     string `json:"oldPassword"     validate:"required"`
		NewPassword     string `json:"newPassword"     validate:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" validate:"required,confirmed=newPassword"`
	}
	if !c.BindJSON(&input) {
		return
	}

	err := ctl.sessions.ChangePassword(c.Context(), input.OldPassword, input.NewPassword, input.ConfirmPassword)
	switch {
	case err == nil:
		c.Success(map[string]any{"updated": true})
	case errors.Is(err, adminsession.ErrPasswordMismatch):
		c.ValidationError(map[string]string{"confirmPassword": "The confirmation does not match the new password."})
	case errors.Is(err, adminsession.ErrNotLoggedIn):
		c.Unauthorized()
	default:
		ctl.backendError(c, err, "Password update failed")
	}
}

// ─── Product management ──────────────────────────────────────────────────────

type productForm struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"numeric,min=0"`
	Category    string  `json:"category"    validate:"required,in=Notebooks,Bags,Pens,Paper,Office supplies,Art Supplies,Other tools"`
	ImageName   string  `json:"imageName"   validate:"nullable,max=255"`
	ImageData   string  `json:"imageData"` // base64
}

func (f productForm) input() (backend.ProductInput, error) {
	in := backend.ProductInput{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    f.Category,
		ImageName:   f.ImageName,
	}
	if f.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(f.ImageData)
		if err != nil {
			return in, err
		}
		in.Image = data
	}
	return in, nil
}

// AddProduct creates a product upstream.
func (ctl *AdminController) AddProduct(c *ctx.Context) {
	var form productForm
	if !c.BindJSON(&form) {
		return
	}
	in, err := form.input()
	if err != nil {
		c.Error(http.StatusBadRequest, "imageData is not valid base64")
		return
	}
	if err := ctl.backend.AddProduct(c.Context(), in); err != nil {
		ctl.backendError(c, err, "Product could not be created")
		return
	}
	c.Created(map[string]any{"created": true})
}

// UpdateProduct replaces a product's fields upstream.
func (ctl *AdminController) UpdateProduct(c *ctx.Context) {
	var form productForm
	if !c.BindJSON(&form) {
		return
	}
	in, err := form.input()
	if err != nil {
		c.Error(http.StatusBadRequest, "imageData is not valid base64")
		return
	}
	if err := ctl.backend.UpdateProduct(c.Context(), c.Param("id"), in); err != nil {
		ctl.backendError(c, err, "Product could not be updated")
		return
	}
	c.Success(map[string]any{"updated": true})
}

// DeleteProduct removes a product upstream.
func (ctl *AdminController) DeleteProduct(c *ctx.Context) {
	if err := ctl.backend.DeleteProduct(c.Context(), c.Param("id")); err != nil {
		ctl.backendError(c, err, "Product could not be deleted")
		return
	}
	c.Success(map[string]any{"deleted": true})
}

// ─── Blog management ─────────────────────────────────────────────────────────

type blogForm struct {
	Title     string `json:"title"   validate:"required,max=255"`
	Content   string `json:"content" validate:"required"`
	Author    string `json:"author"  validate:"required,max=255"`
	ImageName string `json:"imageName" validate:"nullable,max=255"`
	ImageData string `json:"imageData"` // base64
}

func (f blogForm) input() (backend.BlogInput, error) {
	in := backend.BlogInput{
		Title:     f.Title,
		Content:   f.Content,
		Author:    f.Author,
		ImageName: f.ImageName,
	}
	if f.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(f.ImageData)
		if err != nil {
			return in, err
		}
		in.Image = data
	}
	return in, nil
}

// AddBlog creates a blog post upstream.
func (ctl *AdminController) AddBlog(c *ctx.Context) {
	var form blogForm
	if !c.BindJSON(&form) {
		return
	}
	in, err := form.input()
	if err != nil {
		c.Error(http.StatusBadRequest, "imageData is not valid base64")
		return
	}
	if err := ctl.backend.AddBlog(c.Context(), in); err != nil {
		ctl.backendError(c, err, "Post could not be created")
		return
	}
	c.Created(map[string]any{"created": true})
}

// UpdateBlog replaces a blog post upstream.
func (ctl *AdminController) UpdateBlog(c *ctx.Context) {
	var form blogForm
	if !c.BindJSON(&form) {
		return
	}
	in, err := form.input()
	if err != nil {
		c.Error(http.StatusBadRequest, "imageData is not valid base64")
		return
	}
	if err := ctl.backend.UpdateBlog(c.Context(), c.Param("id"), in); err != nil {
		ctl.backendError(c, err, "Post could not be updated")
		return
	}
	c.Success(map[string]any{"updated": true})
}

// DeleteBlog removes a blog post upstream.
func (ctl *AdminController) DeleteBlog(c *ctx.Context) {
	if err := ctl.backend.DeleteBlog(c.Context(), c.Param("id")); err != nil {
		ctl.backendError(c, err, "Post could not be deleted")
		return
	}
	c.Success(map[string]any{"deleted": true})
}

// ─── Orders ──────────────────────────────────────────────────────────────────

// Orders lists every order on the backend.
func (ctl *AdminController) Orders(c *ctx.Context) {
	orders, err := ctl.backend.Orders(c.Context())
	if err != nil {
		ctl.backendError(c, err, "Orders could not be fetched")
		return
	}
	c.Success(orders)
}

// Order returns one order by id.
func (ctl *AdminController) Order(c *ctx.Context) {
	order, err := ctl.backend.Order(c.Context(), c.Param("id"))
	if err != nil {
		ctl.backendError(c, err, "Order could not be fetched")
		return
	}
	c.Success(order)
}

// backendError maps an upstream failure onto the gateway response: the
// upstream verdict passes through, transport failures become a 502.
func (ctl *AdminController) backendError(c *ctx.Context, err error, fallback string) {
	var serr *backend.StatusError
	if errors.As(err, &serr) {
		msg := serr.Message
		if msg == "" {
			msg = fallback
		}
		c.Error(serr.Code, msg)
		return
	}
	c.Error(http.StatusBadGateway, fallback)
}
