package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sidereusnuntius/spacebook/internal/domain"
	"github.com/sidereusnuntius/spacebook/internal/validate"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

// Login exchanges the credentials for a session. Both fields are validated
// locally first; a validation failure aborts before any request is built.
// The caller owns persisting the returned session.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if err := validate.Credentials(email, password); err != nil {
		return domain.Session{}, err
	}

	var res loginResponse
	err := c.do(ctx, http.MethodPost, nil, credentials{Email: email, Password: password}, &res, http.StatusOK, "login")
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		UserID: strconv.FormatInt(res.ID, 10),
		Token:  res.Token,
	}, nil
}

// Logout invalidates the session server-side. The caller clears the local
// session regardless of whether this returns 200 or 401.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, nil, nil, nil, http.StatusOK, "logout")
}

type registration struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type registerResponse struct {
	ID int64 `json:"id"`
}

// Register creates a new account and returns its id. The new user still has
// to log in afterwards.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (string, error) {
	if err := validate.Name("first_name", firstName); err != nil {
		return "", err
	}
	if err := validate.Name("last_name", lastName); err != nil {
		return "", err
	}
	if err := validate.Credentials(email, password); err != nil {
		return "", err
	}

	var res registerResponse
	err := c.do(ctx, http.MethodPost, nil, registration{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	}, &res, http.StatusCreated, "user")
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(res.ID, 10), nil
}
