package api

import (
	"net/http"

	"github.com/manishasuddala09/customercrudfrontend/internal/models"
)

// Call records one facade invocation for assertions in controller tests.
type Call struct {
	Method   string
	ID       int
	Query    ListQuery
	Customer *models.CustomerRequest
	Address  *models.AddressRequest
}

// Mock is an in-memory Service used by controller tests. It records every
// call in order and serves canned data.
type Mock struct {
	Calls      []Call
	Customers  []models.Customer
	Pagination *models.PaginationInfo
	Customer   *models.Customer
	Addresses  []models.Address
	Errs       map[string]error

	nextID int
}

func NewMock() *Mock {
	return &Mock{Errs: map[string]error{}}
}

func (m *Mock) CallCount(method string) int {
	n := 0
	for _, call := range m.Calls {
		if call.Method == method {
			n++
		}
	}
	return n
}

func (m *Mock) newID() int {
	m.nextID++
	return 100 + m.nextID
}

func (m *Mock) ListCustomers(q ListQuery) ([]models.Customer, *models.PaginationInfo, error) {
	m.Calls = append(m.Calls, Call{Method: "ListCustomers", Query: q})
	if err := m.Errs["ListCustomers"]; err != nil {
		return nil, nil, err
	}
	return m.Customers, m.Pagination, nil
}

func (m *Mock) GetCustomer(id int) (*models.Customer, error) {
	m.Calls = append(m.Calls, Call{Method: "GetCustomer", ID: id})
	if err := m.Errs["GetCustomer"]; err != nil {
		return nil, err
	}
	if m.Customer == nil {
		return nil, &Error{StatusCode: http.StatusNotFound, Message: "customer not found"}
	}
	return m.Customer, nil
}

func (m *Mock) CreateCustomer(req models.CustomerRequest) (*models.Customer, error) {
	m.Calls = append(m.Calls, Call{Method: "CreateCustomer", Customer: &req})
	if err := m.Errs["CreateCustomer"]; err != nil {
		return nil, err
	}
	return &models.Customer{
		ID:          m.newID(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}, nil
}

func (m *Mock) UpdateCustomer(id int, req models.CustomerRequest) (*models.Customer, error) {
	m.Calls = append(m.Calls, Call{Method: "UpdateCustomer", ID: id, Customer: &req})
	if err := m.Errs["UpdateCustomer"]; err != nil {
		return nil, err
	}
	return &models.Customer{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}, nil
}

func (m *Mock) DeleteCustomer(id int) error {
	m.Calls = append(m.Calls, Call{Method: "DeleteCustomer", ID: id})
	return m.Errs["DeleteCustomer"]
}

func (m *Mock) ListAddresses(customerID int) ([]models.Address, error) {
	m.Calls = append(m.Calls, Call{Method: "ListAddresses", ID: customerID})
	if err := m.Errs["ListAddresses"]; err != nil {
		return nil, err
	}
	return m.Addresses, nil
}

func (m *Mock) CreateAddress(req models.AddressRequest) (*models.Address, error) {
	m.Calls = append(m.Calls, Call{Method: "CreateAddress", Address: &req})
	if err := m.Errs["CreateAddress"]; err != nil {
		return nil, err
	}
	return &models.Address{
		ID:             m.newID(),
		CustomerID:     req.CustomerID,
		AddressDetails: req.AddressDetails,
		City:           req.City,
		State:          req.State,
		PinCode:        req.PinCode,
		Country:        req.Country,
		IsPrimary:      req.IsPrimary,
	}, nil
}

func (m *Mock) UpdateAddress(id int, req models.AddressRequest) (*models.Address, error) {
	m.Calls = append(m.Calls, Call{Method: "UpdateAddress", ID: id, Address: &req})
	if err := m.Errs["UpdateAddress"]; err != nil {
		return nil, err
	}
	return &models.Address{
		ID:             id,
		CustomerID:     req.CustomerID,
		AddressDetails: req.AddressDetails,
		City:           req.City,
		State:          req.State,
		PinCode:        req.PinCode,
		Country:        req.Country,
		IsPrimary:      req.IsPrimary,
	}, nil
}

func (m *Mock) DeleteAddress(id int) error {
	m.Calls = append(m.Calls, Call{Method: "DeleteAddress", ID: id})
	return m.Errs["DeleteAddress"]
}
