package presenters

import (
	"errors"
	"testing"

	"pantrypilot-backend/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorDetailFlattensToFirstField(t *testing.T) {
	validate := validator.New()

	req := domain.SaveReceiptItemsRequest{
		Items: []domain.CandidateItem{
			{Name: "Milk", Price: "$3.00"},
			{Name: "", Price: "$2.00"},
			{Name: "Bread", Price: ""},
		},
	}

	err := validate.Struct(req)
	require.Error(t, err)

	detail, ok := errorDetail(err).(fiber.Map)
	require.True(t, ok)
	assert.Equal(t, "SaveReceiptItemsRequest.Items[1].Name", detail["field"])
	assert.Equal(t, "failed on the 'required' rule", detail["message"])
}

func TestErrorDetailEmptyBatch(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(domain.SaveReceiptItemsRequest{})
	require.Error(t, err)

	detail, ok := errorDetail(err).(fiber.Map)
	require.True(t, ok)
	assert.Equal(t, "SaveReceiptItemsRequest.Items", detail["field"])
	assert.Equal(t, "failed on the 'required' rule", detail["message"])
}

func TestErrorDetailPlainError(t *testing.T) {
	assert.Equal(t, "something broke", errorDetail(errors.New("something broke")))
	assert.Nil(t, errorDetail(nil))
}
