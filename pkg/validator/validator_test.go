package validator_test

import (
	"testing"

	"go-stockledger/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type form struct {
	Name       string    `validate:"required"`
	Amount     int       `validate:"gt=0"`
	CategoryID uuid.UUID `validate:"uuid_required"`
}

func TestStruct_Valid(t *testing.T) {
	err := validator.Struct(&form{Name: "drill", Amount: 3, CategoryID: uuid.New()})
	assert.NoError(t, err)
}

func TestStruct_ReportsFirstFailedRule(t *testing.T) {
	err := validator.Struct(&form{Name: "", Amount: 3, CategoryID: uuid.New()})

	var fieldErr *validator.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "form.Name", fieldErr.Field)
	assert.Equal(t, "required", fieldErr.Tag)
	assert.Contains(t, err.Error(), "form.Name")
}

func TestStruct_ParamInMessage(t *testing.T) {
	err := validator.Struct(&form{Name: "drill", Amount: 0, CategoryID: uuid.New()})

	var fieldErr *validator.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "gt", fieldErr.Tag)
	assert.Contains(t, err.Error(), "'gt=0'")
}

func TestStruct_ZeroUUIDRejected(t *testing.T) {
	err := validator.Struct(&form{Name: "drill", Amount: 3})

	var fieldErr *validator.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "uuid_required", fieldErr.Tag)
}
