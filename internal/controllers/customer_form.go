package controllers

import (
	"github.com/manishasuddala09/customercrudfrontend/internal/api"
	"github.com/manishasuddala09/customercrudfrontend/internal/models"
)

// AddressBlock is one address sub-form. A zero ID means the block has not
// been persisted yet.
type AddressBlock struct {
	ID             int
	AddressDetails string
	City           string
	State          string
	PinCode        string
	Country        string
	IsPrimary      bool
}

func blankAddress(primary bool) AddressBlock {
	return AddressBlock{Country: models.DefaultCountry, IsPrimary: primary}
}

func blockFromAddress(a models.Address) AddressBlock {
	return AddressBlock{
		ID:             a.ID,
		AddressDetails: a.AddressDetails,
		City:           a.City,
		State:          a.State,
		PinCode:        a.PinCode,
		Country:        a.Country,
		IsPrimary:      a.IsPrimary,
	}
}

func (b AddressBlock) request(customerID int) models.AddressRequest {
	country := b.Country
	if country == "" {
		country = models.DefaultCountry
	}
	return models.AddressRequest{
		CustomerID:     customerID,
		AddressDetails: b.AddressDetails,
		City:           b.City,
		State:          b.State,
		PinCode:        b.PinCode,
		Country:        country,
		IsPrimary:      b.IsPrimary,
	}
}

// CustomerFormController is the dual-mode create/edit customer form: scalar
// customer fields plus a dynamic list of address blocks. The form is never
// shown with zero blocks, and at most one block is primary at a time.
type CustomerFormController struct {
	svc api.Service

	CustomerID  int // 0 means create mode
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Addresses   []AddressBlock

	Errors    FieldErrors
	SubmitErr string
	Loading   bool
}

func NewCustomerFormController(svc api.Service, customerID int) *CustomerFormController {
	return &CustomerFormController{
		svc:        svc,
		CustomerID: customerID,
		Addresses:  []AddressBlock{blankAddress(true)},
		Errors:     FieldErrors{},
	}
}

func (c *CustomerFormController) IsEdit() bool {
	return c.CustomerID > 0
}

// Load seeds the form in edit mode: the customer fetch first, then the
// address fetch. A customer with no stored addresses gets one blank primary
// block.
func (c *CustomerFormController) Load() {
	if !c.IsEdit() {
		return
	}
	c.Loading = true
	c.SubmitErr = ""
	defer func() { c.Loading = false }()

	customer, err := c.svc.GetCustomer(c.CustomerID)
	if err != nil {
		c.SubmitErr = errText(err, "Failed to fetch customer details")
		return
	}
	addresses, err := c.svc.ListAddresses(c.CustomerID)
	if err != nil {
		c.SubmitErr = errText(err, "Failed to fetch customer details")
		return
	}

	c.FirstName = customer.FirstName
	c.LastName = customer.LastName
	c.PhoneNumber = customer.PhoneNumber
	c.Email = customer.Email

	if len(addresses) == 0 {
		c.Addresses = []AddressBlock{blankAddress(true)}
		return
	}
	blocks := make([]AddressBlock, 0, len(addresses))
	for _, a := range addresses {
		blocks = append(blocks, blockFromAddress(a))
	}
	c.Addresses = blocks
}

// AddAddress appends a blank non-primary block.
func (c *CustomerFormController) AddAddress() {
	c.Addresses = append(c.Addresses, blankAddress(false))
}

// RemoveAddress drops the block at index. The last remaining block cannot be
// removed; if the removed block was the only primary, the first remaining
// block is promoted.
func (c *CustomerFormController) RemoveAddress(index int) {
	if len(c.Addresses) <= 1 || index < 0 || index >= len(c.Addresses) {
		return
	}
	c.Addresses = append(c.Addresses[:index], c.Addresses[index+1:]...)
	for i := range c.Addresses {
		if c.Addresses[i].IsPrimary {
			return
		}
	}
	c.Addresses[0].IsPrimary = true
}

// SetPrimary marks block index primary and clears every sibling in the same
// update.
func (c *CustomerFormController) SetPrimary(index int) {
	if index < 0 || index >= len(c.Addresses) {
		return
	}
	for i := range c.Addresses {
		c.Addresses[i].IsPrimary = i == index
	}
}

// Validate runs the submit-time checks and returns whether the form may be
// submitted. Errors are keyed per field, and per field-per-index for address
// blocks.
func (c *CustomerFormController) Validate() bool {
	errs := FieldErrors{}
	requireNonEmpty(errs, "first_name", c.FirstName, "First name is required")
	requireNonEmpty(errs, "last_name", c.LastName, "Last name is required")
	validatePhoneNumber(errs, "phone_number", c.PhoneNumber)
	for i, block := range c.Addresses {
		index := i
		validateAddressFields(errs, block, func(field string) string {
			return indexedKey(field, index)
		})
	}
	c.Errors = errs
	return len(errs) == 0
}

// Submit upserts the customer record first, then each address block in array
// order, attaching the (possibly newly created) customer id. The sequence is
// not atomic: a failure partway leaves earlier writes in place and surfaces
// only the error message.
func (c *CustomerFormController) Submit() error {
	if !c.Validate() {
		return ErrInvalidForm
	}
	c.Loading = true
	c.SubmitErr = ""
	defer func() { c.Loading = false }()

	req := models.CustomerRequest{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
	}

	customerID := c.CustomerID
	if c.IsEdit() {
		if _, err := c.svc.UpdateCustomer(c.CustomerID, req); err != nil {
			c.SubmitErr = errText(err, "Failed to save customer")
			return err
		}
	} else {
		created, err := c.svc.CreateCustomer(req)
		if err != nil {
			c.SubmitErr = errText(err, "Failed to save customer")
			return err
		}
		customerID = created.ID
	}

	for _, block := range c.Addresses {
		payload := block.request(customerID)
		var err error
		if block.ID > 0 {
			_, err = c.svc.UpdateAddress(block.ID, payload)
		} else {
			_, err = c.svc.CreateAddress(payload)
		}
		if err != nil {
			c.SubmitErr = errText(err, "Failed to save customer")
			return err
		}
	}
	return nil
}
