package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manishasuddala09/customercrudfrontend/internal/api"
	"github.com/manishasuddala09/customercrudfrontend/internal/models"
)

func addressFormMock() *api.Mock {
	mock := api.NewMock()
	mock.Customer = &models.Customer{ID: 7, FirstName: "Asha", LastName: "Rao", PhoneNumber: "9876543210"}
	mock.Addresses = []models.Address{
		{ID: 3, CustomerID: 7, AddressDetails: "12 MG Road", City: "Pune", State: "MH", PinCode: "411001", Country: "India", IsPrimary: true},
	}
	return mock
}

func TestAddressFormLoadCreate(t *testing.T) {
	mock := addressFormMock()
	ctrl := NewAddressFormController(mock, 7, 0)

	ctrl.Load()

	assert.False(t, ctrl.IsEdit())
	require.NotNil(t, ctrl.Customer)
	assert.Equal(t, "Asha Rao", ctrl.Customer.FullName())
	assert.Equal(t, models.DefaultCountry, ctrl.Address.Country)
	// no address fetch in create mode
	assert.Equal(t, 0, mock.CallCount("ListAddresses"))
}

func TestAddressFormCustomerFetchFailureDropsCaptionOnly(t *testing.T) {
	mock := addressFormMock()
	mock.Errs["GetCustomer"] = errors.New("connection refused")
	ctrl := NewAddressFormController(mock, 7, 0)

	ctrl.Load()

	assert.Nil(t, ctrl.Customer)
	assert.Empty(t, ctrl.SubmitErr)
}

func TestAddressFormLoadEdit(t *testing.T) {
	mock := addressFormMock()
	ctrl := NewAddressFormController(mock, 7, 3)

	ctrl.Load()

	assert.True(t, ctrl.IsEdit())
	assert.Equal(t, "12 MG Road", ctrl.Address.AddressDetails)
	assert.True(t, ctrl.Address.IsPrimary)
}

func TestAddressFormLoadEditMissingAddress(t *testing.T) {
	mock := addressFormMock()
	ctrl := NewAddressFormController(mock, 7, 999)

	ctrl.Load()

	assert.Equal(t, "Address not found", ctrl.SubmitErr)
}

func TestAddressFormValidation(t *testing.T) {
	ctrl := NewAddressFormController(api.NewMock(), 7, 0)
	ctrl.Address = AddressBlock{PinCode: "12345"}

	ok := ctrl.Validate()

	assert.False(t, ok)
	assert.Equal(t, "Address is required", ctrl.Errors.Get("address_details"))
	assert.Equal(t, "City is required", ctrl.Errors.Get("city"))
	assert.Equal(t, "State is required", ctrl.Errors.Get("state"))
	assert.Equal(t, "PIN code must be 6 digits", ctrl.Errors.Get("pin_code"))
}

func TestAddressFormSubmitCreate(t *testing.T) {
	mock := addressFormMock()
	ctrl := NewAddressFormController(mock, 7, 0)
	ctrl.Address = AddressBlock{
		AddressDetails: "8 FC Road",
		City:           "Pune",
		State:          "MH",
		PinCode:        "411004",
		Country:        "India",
	}

	require.NoError(t, ctrl.Submit())

	require.Equal(t, 1, mock.CallCount("CreateAddress"))
	created := mock.Calls[len(mock.Calls)-1].Address
	// the customer id comes from the route, never from user input
	assert.Equal(t, 7, created.CustomerID)
}

func TestAddressFormSubmitEdit(t *testing.T) {
	mock := addressFormMock()
	ctrl := NewAddressFormController(mock, 7, 3)
	ctrl.Load()
	ctrl.Address.City = "Mumbai"

	require.NoError(t, ctrl.Submit())

	require.Equal(t, 1, mock.CallCount("UpdateAddress"))
	updated := mock.Calls[len(mock.Calls)-1]
	assert.Equal(t, 3, updated.ID)
	assert.Equal(t, "Mumbai", updated.Address.City)
}

func TestAddressFormSubmitFailure(t *testing.T) {
	mock := addressFormMock()
	mock.Errs["CreateAddress"] = errors.New("connection refused")
	ctrl := NewAddressFormController(mock, 7, 0)
	ctrl.Address = AddressBlock{
		AddressDetails: "8 FC Road",
		City:           "Pune",
		State:          "MH",
		PinCode:        "411004",
	}

	require.Error(t, ctrl.Submit())
	assert.Equal(t, "Failed to save address", ctrl.SubmitErr)
}

func TestAddressFormInvalidSubmitIssuesNoCall(t *testing.T) {
	mock := addressFormMock()
	ctrl := NewAddressFormController(mock, 7, 0)

	err := ctrl.Submit()

	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, 0, mock.CallCount("CreateAddress"))
}
