package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	m := MemberModel{MemberFirstName: "Jane", MemberLastName: "Doe"}
	assert.Equal(t, "Jane Doe", m.FullName())
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("nil when date of birth unknown", func(t *testing.T) {
		m := MemberModel{}
		assert.Nil(t, m.AgeAt(now))
	})

	t.Run("birthday already passed this year", func(t *testing.T) {
		dob := time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC)
		m := MemberModel{MemberDateOfBirth: &dob}
		assert.Equal(t, 35, *m.AgeAt(now))
	})

	t.Run("birthday later this year", func(t *testing.T) {
		dob := time.Date(1990, 11, 2, 0, 0, 0, 0, time.UTC)
		m := MemberModel{MemberDateOfBirth: &dob}
		assert.Equal(t, 34, *m.AgeAt(now))
	})

	t.Run("birthday today", func(t *testing.T) {
		dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
		m := MemberModel{MemberDateOfBirth: &dob}
		assert.Equal(t, 25, *m.AgeAt(now))
	})
}
