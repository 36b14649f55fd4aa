package controllers

import (
	"github.com/manishasuddala09/customercrudfrontend/internal/api"
	"github.com/manishasuddala09/customercrudfrontend/internal/models"
)

// AddressFormController is the dual-mode create/edit form for a single
// address scoped to one customer. The customer id always comes from the
// route, never from user input.
type AddressFormController struct {
	svc api.Service

	CustomerID int
	AddressID  int // 0 means create mode
	Customer   *models.Customer
	Address    AddressBlock

	Errors    FieldErrors
	SubmitErr string
	Loading   bool
}

func NewAddressFormController(svc api.Service, customerID, addressID int) *AddressFormController {
	return &AddressFormController{
		svc:        svc,
		CustomerID: customerID,
		AddressID:  addressID,
		Address:    blankAddress(false),
		Errors:     FieldErrors{},
	}
}

func (c *AddressFormController) IsEdit() bool {
	return c.AddressID > 0
}

// Load fetches the owning customer for the caption and, in edit mode, the
// target address. A failed customer fetch only drops the caption; a missing
// address is a load failure.
func (c *AddressFormController) Load() {
	c.Loading = true
	c.SubmitErr = ""
	defer func() { c.Loading = false }()

	if customer, err := c.svc.GetCustomer(c.CustomerID); err == nil {
		c.Customer = customer
	}

	if !c.IsEdit() {
		return
	}

	addresses, err := c.svc.ListAddresses(c.CustomerID)
	if err != nil {
		c.SubmitErr = errText(err, "Failed to fetch address details")
		return
	}
	for _, a := range addresses {
		if a.ID == c.AddressID {
			c.Address = blockFromAddress(a)
			return
		}
	}
	c.SubmitErr = "Address not found"
}

func (c *AddressFormController) Validate() bool {
	errs := FieldErrors{}
	validateAddressFields(errs, c.Address, func(field string) string { return field })
	c.Errors = errs
	return len(errs) == 0
}

// Submit creates or updates the address under the route's customer.
func (c *AddressFormController) Submit() error {
	if !c.Validate() {
		return ErrInvalidForm
	}
	c.Loading = true
	c.SubmitErr = ""
	defer func() { c.Loading = false }()

	payload := c.Address.request(c.CustomerID)
	var err error
	if c.IsEdit() {
		_, err = c.svc.UpdateAddress(c.AddressID, payload)
	} else {
		_, err = c.svc.CreateAddress(payload)
	}
	if err != nil {
		c.SubmitErr = errText(err, "Failed to save address")
		return err
	}
	return nil
}
