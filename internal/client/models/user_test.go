package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"full", User{Username: "a@x.io", FirstName: "Asha", LastName: "Rao"}, "Asha Rao"},
		{"first only", User{Username: "a@x.io", FirstName: "Asha"}, "Asha"},
		{"last only", User{Username: "a@x.io", LastName: "Rao"}, "Rao"},
		{"username", User{Username: "a@x.io"}, "a@x.io"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestProfileUpdate_Empty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.Empty())
	name := "Asha"
	assert.False(t, ProfileUpdate{FirstName: &name}.Empty())
}
