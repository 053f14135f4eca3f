package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Role     string `json:"role" validate:"omitempty,userrole"`
	SeatNo   int32  `validate:"gte=1"`
	Email    string `json:"email,omitempty" validate:"omitempty,email" errorMsg:"Give us a real email"`
}

func TestValidateStruct(t *testing.T) {
	v := New()

	errs := ValidateStruct(v, &signupRequest{Role: "root", SeatNo: 0, Email: "nope"})
	assert.Equal(t, map[string]string{
		"username": "This field is required",
		"role":     "Value must be one of the user roles: admin, customer",
		"seat_no":  "Value should be greater than or equal to 1",
		"email":    "Give us a real email",
	}, errs)

	assert.Empty(t, ValidateStruct(v, signupRequest{Username: "ade", Role: "admin", SeatNo: 2}))
}
