package api

import (
	"context"
	"net/http"
)

// User is the backend's user record.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
}

// Tokens is the access/refresh pair returned by authentication.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResult is the response shape shared by signup and login.
type AuthResult struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

// SignupInput carries the registration form.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	College  string `json:"college"`
	Year     string `json:"year"`
	Language string `json:"language"`
}

// ParentInput carries the guardian contact submitted after signup.
type ParentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/auth/signup", in)
	if err != nil {
		return nil, err
	}
	var out AuthResult
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var out AuthResult
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoogleStartURL is the federated-login entry point. The browser round trip
// delivers a base64url payload that Initialize consumes on the next launch.
func (c *Client) GoogleStartURL() string {
	return c.BaseURL + "/auth/google/start"
}

// UpdateParent stores the guardian contact on the authenticated user.
func (c *Client) UpdateParent(ctx context.Context, in ParentInput) (*User, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/users/me/parent", in)
	if err != nil {
		return nil, err
	}
	var out User
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
