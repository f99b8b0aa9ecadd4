package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoleCanonicalizesCasing(t *testing.T) {
	cases := map[string]Role{
		"student":    RoleStudent,
		"STUDENT":    RoleStudent,
		"Student":    RoleStudent,
		" student ":  RoleStudent,
		"instructor": RoleInstructor,
		"INSTRUCTOR": RoleInstructor,
		"admin":      RoleAdmin,
		"Admin":      RoleAdmin,
		"ADMIN":      RoleAdmin,
	}

	for raw, want := range cases {
		got, err := ParseRole(raw)
		assert.NoError(t, err, "raw=%q", raw)
		assert.Equal(t, want, got, "raw=%q", raw)
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "superadmin", "teacher", "students"} {
		_, err := ParseRole(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}
