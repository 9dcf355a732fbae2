package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		Name:     "John Doe",
		Email:    "john@test.com",
		Password: "employee123",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(r *RegisterRequest)
	}{
		{"missing name", func(r *RegisterRequest) { r.Name = "" }},
		{"whitespace name", func(r *RegisterRequest) { r.Name = "   " }},
		{"name too long", func(r *RegisterRequest) { r.Name = strings.Repeat("a", 256) }},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }},
		{"short password", func(r *RegisterRequest) { r.Password = "abc12" }},
		{"unknown role", func(r *RegisterRequest) { r.Role = "admin" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := valid
			c.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestRegisterRequestValidateRoles(t *testing.T) {
	for _, role := range []string{"", "employee", "manager"} {
		req := RegisterRequest{
			Name:     "Jane Smith",
			Email:    "jane@test.com",
			Password: "employee123",
			Role:     role,
		}
		assert.NoError(t, req.Validate(), "role %q", role)
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "john@test.com", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "john@test.com"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "bad-email", Password: "x"}).Validate())
}
