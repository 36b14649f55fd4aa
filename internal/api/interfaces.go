package api

import "github.com/manishasuddala09/customercrudfrontend/internal/models"

// Service is the facade every view controller talks to. Controllers never
// touch the transport directly.
type Service interface {
	ListCustomers(q ListQuery) ([]models.Customer, *models.PaginationInfo, error)
	GetCustomer(id int) (*models.Customer, error)
	CreateCustomer(req models.CustomerRequest) (*models.Customer, error)
	UpdateCustomer(id int, req models.CustomerRequest) (*models.Customer, error)
	DeleteCustomer(id int) error
	ListAddresses(customerID int) ([]models.Address, error)
	CreateAddress(req models.AddressRequest) (*models.Address, error)
	UpdateAddress(id int, req models.AddressRequest) (*models.Address, error)
	DeleteAddress(id int) error
}
