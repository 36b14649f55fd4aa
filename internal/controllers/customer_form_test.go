package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manishasuddala09/customercrudfrontend/internal/api"
	"github.com/manishasuddala09/customercrudfrontend/internal/models"
)

func validCustomerForm(svc api.Service) *CustomerFormController {
	ctrl := NewCustomerFormController(svc, 0)
	ctrl.FirstName = "Asha"
	ctrl.LastName = "Rao"
	ctrl.PhoneNumber = "9876543210"
	ctrl.Addresses[0].AddressDetails = "12 MG Road"
	ctrl.Addresses[0].City = "Pune"
	ctrl.Addresses[0].State = "MH"
	ctrl.Addresses[0].PinCode = "411001"
	return ctrl
}

func TestCustomerFormSeedsOneBlankPrimaryBlock(t *testing.T) {
	ctrl := NewCustomerFormController(api.NewMock(), 0)

	assert.False(t, ctrl.IsEdit())
	require.Len(t, ctrl.Addresses, 1)
	assert.True(t, ctrl.Addresses[0].IsPrimary)
	assert.Equal(t, models.DefaultCountry, ctrl.Addresses[0].Country)
}

func TestCustomerFormLoadEdit(t *testing.T) {
	mock := api.NewMock()
	mock.Customer = &models.Customer{ID: 7, FirstName: "Asha", LastName: "Rao", PhoneNumber: "9876543210", Email: "asha@example.com"}
	mock.Addresses = []models.Address{
		{ID: 3, CustomerID: 7, AddressDetails: "12 MG Road", City: "Pune", State: "MH", PinCode: "411001", Country: "India", IsPrimary: true},
		{ID: 4, CustomerID: 7, AddressDetails: "8 FC Road", City: "Pune", State: "MH", PinCode: "411004", Country: "India"},
	}
	ctrl := NewCustomerFormController(mock, 7)

	ctrl.Load()

	assert.True(t, ctrl.IsEdit())
	assert.Equal(t, "Asha", ctrl.FirstName)
	assert.Equal(t, "asha@example.com", ctrl.Email)
	require.Len(t, ctrl.Addresses, 2)
	assert.Equal(t, 3, ctrl.Addresses[0].ID)
	assert.False(t, ctrl.Addresses[1].IsPrimary)
}

func TestCustomerFormLoadEditWithoutAddresses(t *testing.T) {
	mock := api.NewMock()
	mock.Customer = &models.Customer{ID: 7, FirstName: "Asha", LastName: "Rao", PhoneNumber: "9876543210"}
	ctrl := NewCustomerFormController(mock, 7)

	ctrl.Load()

	// the form is never shown with zero address blocks
	require.Len(t, ctrl.Addresses, 1)
	assert.Zero(t, ctrl.Addresses[0].ID)
	assert.True(t, ctrl.Addresses[0].IsPrimary)
}

func TestCustomerFormPhoneValidation(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"12345", false},
		{"1234567890", true},
		{"12345678901", false},
		{"12345abcde", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			ctrl := validCustomerForm(api.NewMock())
			ctrl.PhoneNumber = tt.phone

			ok := ctrl.Validate()

			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, ctrl.Errors.Get("phone_number"))
			}
		})
	}
}

func TestCustomerFormPinCodeValidation(t *testing.T) {
	tests := []struct {
		pinCode string
		valid   bool
	}{
		{"12345", false},
		{"123456", true},
		{"1234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.pinCode, func(t *testing.T) {
			ctrl := validCustomerForm(api.NewMock())
			ctrl.Addresses[0].PinCode = tt.pinCode

			assert.Equal(t, tt.valid, ctrl.Validate())
		})
	}
}

func TestCustomerFormErrorsScopedPerBlock(t *testing.T) {
	mock := api.NewMock()
	ctrl := validCustomerForm(mock)
	ctrl.AddAddress()
	ctrl.Addresses[1] = AddressBlock{
		AddressDetails: "8 FC Road",
		City:           "Pune",
		State:          "MH",
		PinCode:        "12345", // invalid
		Country:        "India",
	}

	err := ctrl.Submit()

	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Empty(t, ctrl.Errors.Get("pin_code_0"))
	assert.Equal(t, "PIN code must be 6 digits", ctrl.Errors.Get("pin_code_1"))
	// submission is blocked entirely, nothing reaches the facade
	assert.Empty(t, mock.Calls)
}

func TestCustomerFormWhitespaceOnlyFieldsRejected(t *testing.T) {
	ctrl := validCustomerForm(api.NewMock())
	ctrl.FirstName = "   "

	assert.False(t, ctrl.Validate())
	assert.Equal(t, "First name is required", ctrl.Errors.Get("first_name"))
}

func TestCustomerFormSetPrimaryIsExclusive(t *testing.T) {
	ctrl := NewCustomerFormController(api.NewMock(), 0)
	ctrl.AddAddress()
	ctrl.AddAddress()
	require.Len(t, ctrl.Addresses, 3)

	ctrl.SetPrimary(2)

	assert.False(t, ctrl.Addresses[0].IsPrimary)
	assert.False(t, ctrl.Addresses[1].IsPrimary)
	assert.True(t, ctrl.Addresses[2].IsPrimary)
}

func TestCustomerFormRemovePromotesFirstRemaining(t *testing.T) {
	ctrl := NewCustomerFormController(api.NewMock(), 0)
	ctrl.AddAddress()
	require.True(t, ctrl.Addresses[0].IsPrimary)

	ctrl.RemoveAddress(0)

	require.Len(t, ctrl.Addresses, 1)
	assert.True(t, ctrl.Addresses[0].IsPrimary)
}

func TestCustomerFormRemoveKeepsExistingPrimary(t *testing.T) {
	ctrl := NewCustomerFormController(api.NewMock(), 0)
	ctrl.AddAddress()
	ctrl.AddAddress()
	ctrl.SetPrimary(1)

	ctrl.RemoveAddress(2)

	require.Len(t, ctrl.Addresses, 2)
	assert.False(t, ctrl.Addresses[0].IsPrimary)
	assert.True(t, ctrl.Addresses[1].IsPrimary)
}

func TestCustomerFormCannotRemoveLastBlock(t *testing.T) {
	ctrl := NewCustomerFormController(api.NewMock(), 0)

	ctrl.RemoveAddress(0)

	assert.Len(t, ctrl.Addresses, 1)
}

func TestCustomerFormSubmitCreateSequencing(t *testing.T) {
	mock := api.NewMock()
	ctrl := validCustomerForm(mock)

	require.NoError(t, ctrl.Submit())

	require.Len(t, mock.Calls, 2)
	assert.Equal(t, "CreateCustomer", mock.Calls[0].Method)
	assert.Equal(t, "CreateAddress", mock.Calls[1].Method)
	// the address create carries the newly returned customer id
	assert.Equal(t, 101, mock.Calls[1].Address.CustomerID)
	assert.True(t, mock.Calls[1].Address.IsPrimary)
}

func TestCustomerFormSubmitEditUpdatesAndCreates(t *testing.T) {
	mock := api.NewMock()
	ctrl := NewCustomerFormController(mock, 7)
	ctrl.FirstName = "Asha"
	ctrl.LastName = "Rao"
	ctrl.PhoneNumber = "9876543210"
	ctrl.Addresses = []AddressBlock{
		{ID: 55, AddressDetails: "12 MG Road", City: "Pune", State: "MH", PinCode: "411001", Country: "India", IsPrimary: true},
		{AddressDetails: "8 FC Road", City: "Pune", State: "MH", PinCode: "411004", Country: "India"},
	}

	require.NoError(t, ctrl.Submit())

	require.Len(t, mock.Calls, 3)
	assert.Equal(t, "UpdateCustomer", mock.Calls[0].Method)
	assert.Equal(t, 7, mock.Calls[0].ID)
	assert.Equal(t, "UpdateAddress", mock.Calls[1].Method)
	assert.Equal(t, 55, mock.Calls[1].ID)
	assert.Equal(t, "CreateAddress", mock.Calls[2].Method)
	assert.Equal(t, 7, mock.Calls[2].Address.CustomerID)
}

func TestCustomerFormSubmitPartialFailure(t *testing.T) {
	mock := api.NewMock()
	mock.Errs["CreateAddress"] = &api.Error{StatusCode: 500, Message: "address save failed"}
	ctrl := validCustomerForm(mock)

	err := ctrl.Submit()

	require.Error(t, err)
	// the customer create already went through; only the message is surfaced
	assert.Equal(t, 1, mock.CallCount("CreateCustomer"))
	assert.Equal(t, "address save failed", ctrl.SubmitErr)
}

func TestCustomerFormSubmitCustomerFailureStopsSequence(t *testing.T) {
	mock := api.NewMock()
	mock.Errs["CreateCustomer"] = &api.Error{StatusCode: 500, Message: "customer save failed"}
	ctrl := validCustomerForm(mock)

	require.Error(t, ctrl.Submit())

	assert.Equal(t, 0, mock.CallCount("CreateAddress"))
	assert.Equal(t, "customer save failed", ctrl.SubmitErr)
}
