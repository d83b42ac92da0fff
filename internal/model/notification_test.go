package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusSent, true},
		{StatusPending, StatusFailed, true},
		{StatusFailed, StatusPending, true},
		{StatusFailed, StatusSent, false},
		{StatusSent, StatusPending, false},
		{StatusSent, StatusFailed, false},
		{StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusSent.Valid())
	assert.True(t, StatusFailed.Valid())
	assert.False(t, Status("cancelled").Valid())
	assert.False(t, Status("").Valid())
}

func TestMaterialUpdate_Apply(t *testing.T) {
	desc := "old"
	m := Material{ID: 1, Title: "Algebra", Description: &desc, IsActive: true}

	title := "Algebra 7"
	inactive := false
	MaterialUpdate{Title: &title, IsActive: &inactive}.Apply(&m)

	assert.Equal(t, "Algebra 7", m.Title)
	assert.Equal(t, "old", *m.Description)
	assert.False(t, m.IsActive)
	assert.Nil(t, m.Subject)
}

func TestMaterialUpdate_Empty(t *testing.T) {
	assert.True(t, MaterialUpdate{}.Empty())

	subject := "math"
	assert.False(t, MaterialUpdate{Subject: &subject}.Empty())
}
