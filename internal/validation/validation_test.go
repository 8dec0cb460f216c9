package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name    string  `validate:"required,min=3,max=100"`
	Email   string  `validate:"required,email"`
	Phone   string  `validate:"required,inphone"`
	Pincode string  `validate:"required,pincode"`
	Plan    string  `validate:"required,oneof=1-month 3-month 12-month"`
	Lat     float64 `validate:"gte=-90,lte=90"`
	Amount  int     `validate:"gt=0"`
}

func validForm() sampleForm {
	return sampleForm{
		Name:    "Priya Sharma",
		Email:   "priya@example.com",
		Phone:   "9876543210",
		Pincode: "400076",
		Plan:    "3-month",
		Lat:     19.1136,
		Amount:  2499,
	}
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(validForm()))
}

func TestStruct_CollectsEveryViolation(t *testing.T) {
	form := validForm()
	form.Name = "ab"
	form.Phone = "12345"
	form.Pincode = "40"
	form.Amount = 0

	err := Struct(form)
	require.Error(t, err)

	ve, ok := AsErrors(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 4)

	fields := make(map[string]string)
	for _, f := range ve.Fields {
		fields[f.Field] = f.Tag
	}
	assert.Equal(t, "min", fields["Name"])
	assert.Equal(t, "inphone", fields["Phone"])
	assert.Equal(t, "pincode", fields["Pincode"])
	assert.Equal(t, "gt", fields["Amount"])
}

func TestStruct_PhoneRule(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"valid mobile", "9876543210", true},
		{"starts with 6", "6000000001", true},
		{"too short", "987654321", false},
		{"too long", "98765432100", false},
		{"bad prefix", "1234567890", false},
		{"non numeric", "98765abcde", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Phone = tt.phone
			err := Struct(form)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStruct_PincodeRule(t *testing.T) {
	form := validForm()
	form.Pincode = "001122"
	assert.NoError(t, Struct(form))

	form.Pincode = "1122a3"
	assert.Error(t, Struct(form))
}

func TestErrors_Error(t *testing.T) {
	form := validForm()
	form.Email = "not-an-email"
	form.Plan = "6-month"

	err := Struct(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email must be a valid email address")
	assert.Contains(t, err.Error(), "Plan must be one of")
}
