package controllers

import (
	"fmt"

	"github.com/manishasuddala09/customercrudfrontend/internal/api"
	"github.com/manishasuddala09/customercrudfrontend/internal/models"
)

// DetailController owns one customer's detail view, including the nested
// address rows. Display precedence is loading, then error, then not-found,
// then content.
type DetailController struct {
	svc api.Service

	CustomerID    int
	Customer      *models.Customer
	Loading       bool
	Err           string
	NotFound      bool
	PendingDelete *DeleteTarget

	fetchSeq int
}

func NewDetailController(svc api.Service, customerID int) *DetailController {
	return &DetailController{svc: svc, CustomerID: customerID}
}

func (c *DetailController) beginFetch() int {
	c.fetchSeq++
	c.Loading = true
	c.Err = ""
	c.NotFound = false
	return c.fetchSeq
}

func (c *DetailController) completeFetch(token int, customer *models.Customer, err error) {
	if token != c.fetchSeq {
		return
	}
	c.Loading = false
	if err != nil {
		if api.IsNotFound(err) {
			c.NotFound = true
			return
		}
		c.Err = errText(err, "Failed to fetch customer details")
		return
	}
	if customer == nil {
		c.NotFound = true
		return
	}
	c.Customer = customer
}

// Load fetches the customer with its nested addresses.
func (c *DetailController) Load() {
	token := c.beginFetch()
	customer, err := c.svc.GetCustomer(c.CustomerID)
	c.completeFetch(token, customer, err)
}

// DeleteAddress removes one address row and then refetches the whole
// customer record, keeping the server-computed address count consistent.
func (c *DetailController) DeleteAddress(addressID int) {
	if err := c.svc.DeleteAddress(addressID); err != nil {
		c.Err = errText(err, "Failed to delete address")
		return
	}
	c.Load()
}

// RequestDelete stages deletion of the customer itself. The confirmation
// names the customer; the server cascades to dependent addresses.
func (c *DetailController) RequestDelete() {
	if c.Customer == nil {
		return
	}
	c.PendingDelete = &DeleteTarget{ID: c.Customer.ID, Name: c.Customer.FullName()}
}

func (c *DetailController) CancelDelete() {
	c.PendingDelete = nil
}

func (c *DetailController) ConfirmDelete() error {
	if c.PendingDelete == nil {
		return fmt.Errorf("no delete pending")
	}
	target := c.PendingDelete
	c.PendingDelete = nil
	if err := c.svc.DeleteCustomer(target.ID); err != nil {
		c.Err = errText(err, "Failed to delete customer")
		return err
	}
	return nil
}
