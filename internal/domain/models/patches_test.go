package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPlayPatchApply(t *testing.T) {
	play := &Play{ID: 1, Title: "Hamlet", Genre: strPtr("Tragedy"), Synopsis: strPtr("Prince"), Duration: strPtr("3h")}
	PlayPatch{Genre: strPtr("Drama")}.Apply(play)
	assert.Equal(t, "Drama", *play.Genre)
	assert.Equal(t, "Hamlet", play.Title)
	assert.Equal(t, "Prince", *play.Synopsis)
	assert.Equal(t, "3h", *play.Duration)
}

func TestCustomerPatchApplyEmpty(t *testing.T) {
	customer := &Customer{ID: 2, Name: strPtr("Fatmata"), Email: strPtr("f@example.com")}
	before := *customer
	CustomerPatch{}.Apply(customer)
	assert.Equal(t, before, *customer)
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("admin"))
	assert.True(t, IsValidRole("customer"))
	assert.False(t, IsValidRole("Admin"))
	assert.False(t, IsValidRole(""))
}
