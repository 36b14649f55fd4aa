package models

import (
	"fmt"
	"time"
)

// DefaultCountry is used when an address form is seeded without a country.
const DefaultCountry = "India"

// Customer - customer record as returned by the remote API. AddressCount and
// Cities are server-computed aggregates; Addresses is only populated on the
// single-customer fetch.
type Customer struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PhoneNumber  string    `json:"phone_number"`
	Email        string    `json:"email,omitempty"`
	AddressCount int       `json:"address_count"`
	Cities       string    `json:"cities,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Addresses    []Address `json:"addresses,omitempty"`
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// AddressCountLabel renders the server-computed aggregate the way the list
// and detail pages display it.
func (c *Customer) AddressCountLabel() string {
	switch c.AddressCount {
	case 0:
		return "No Address"
	case 1:
		return "Only One Address"
	default:
		return fmt.Sprintf("%d Addresses", c.AddressCount)
	}
}

func (c *Customer) CitiesLabel() string {
	if c.Cities == "" {
		return "N/A"
	}
	return c.Cities
}

// Validate rejects records the server should never produce, so malformed
// payloads fail at the API boundary instead of rendering as zero values.
func (c *Customer) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("customer record missing id")
	}
	return nil
}

// Address - postal address owned by exactly one customer.
type Address struct {
	ID             int    `json:"id"`
	CustomerID     int    `json:"customer_id"`
	AddressDetails string `json:"address_details"`
	City           string `json:"city"`
	State          string `json:"state"`
	PinCode        string `json:"pin_code"`
	Country        string `json:"country"`
	IsPrimary      bool   `json:"is_primary"`
}

func (a *Address) Validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("address record missing id")
	}
	return nil
}

// PaginationInfo mirrors the pagination block of the list response envelope.
type PaginationInfo struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	TotalPages  int `json:"total_pages"`
}

type CustomerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

type AddressRequest struct {
	CustomerID     int    `json:"customer_id"`
	AddressDetails string `json:"address_details"`
	City           string `json:"city"`
	State          string `json:"state"`
	PinCode        string `json:"pin_code"`
	Country        string `json:"country"`
	IsPrimary      bool   `json:"is_primary"`
}

// ErrorResponse is the error body shape the remote API is expected to return.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
