package controllers

import (
	"github.com/manishasuddala09/customercrudfrontend/internal/api"
	"github.com/manishasuddala09/customercrudfrontend/internal/models"
)

// DefaultPerPage is the list page size used when none is configured.
const DefaultPerPage = 10

const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

var sortableFields = map[string]bool{
	"id":           true,
	"first_name":   true,
	"phone_number": true,
}

// Filters holds the six list filter fields. Empty text fields mean
// unfiltered.
type Filters struct {
	Search    string
	City      string
	State     string
	PinCode   string
	SortBy    string
	SortOrder string
}

func DefaultFilters() Filters {
	return Filters{SortBy: "id", SortOrder: SortAsc}
}

// DeleteTarget is a pending delete awaiting interactive confirmation.
type DeleteTarget struct {
	ID   int
	Name string
}

// ListController owns the customer list view: filters, pagination, the row
// set, and the pending-delete confirmation state. Any change to the filters
// or the current page triggers exactly one fresh fetch.
type ListController struct {
	svc api.Service

	Filters       Filters
	Pagination    models.PaginationInfo
	Rows          []models.Customer
	Loading       bool
	Err           string
	PendingDelete *DeleteTarget

	fetchSeq int
}

func NewListController(svc api.Service) *ListController {
	return &ListController{
		svc:     svc,
		Filters: DefaultFilters(),
		Pagination: models.PaginationInfo{
			CurrentPage: 1,
			PerPage:     DefaultPerPage,
		},
	}
}

func (c *ListController) query() api.ListQuery {
	return api.ListQuery{
		Search:    c.Filters.Search,
		City:      c.Filters.City,
		State:     c.Filters.State,
		PinCode:   c.Filters.PinCode,
		SortBy:    c.Filters.SortBy,
		SortOrder: c.Filters.SortOrder,
		Page:      c.Pagination.CurrentPage,
		Limit:     c.Pagination.PerPage,
	}
}

// beginFetch issues a new sequence token. completeFetch drops any result
// whose token is no longer current, so a late response from a superseded
// request cannot overwrite a newer one.
func (c *ListController) beginFetch() int {
	c.fetchSeq++
	c.Loading = true
	c.Err = ""
	return c.fetchSeq
}

func (c *ListController) completeFetch(token int, rows []models.Customer, p *models.PaginationInfo, err error) {
	if token != c.fetchSeq {
		return
	}
	c.Loading = false
	if err != nil {
		c.Err = errText(err, "Failed to fetch customers")
		return
	}
	c.Rows = rows
	if p != nil {
		c.Pagination = *p
		return
	}
	// Unpaginated response: treat it as a single page.
	c.Pagination.TotalPages = 1
	c.Pagination.Total = len(rows)
}

// Refresh replaces the row set wholesale with the current filter and page
// parameters.
func (c *ListController) Refresh() {
	token := c.beginFetch()
	rows, pagination, err := c.svc.ListCustomers(c.query())
	c.completeFetch(token, rows, pagination, err)
}

// ApplyFilters replaces the filter set, resets to the first page, and
// refetches.
func (c *ListController) ApplyFilters(f Filters) {
	c.Filters = f
	c.Pagination.CurrentPage = 1
	c.Refresh()
}

// ClearFilters resets every filter field to its default and refetches from
// page one.
func (c *ListController) ClearFilters() {
	c.Filters = DefaultFilters()
	c.Pagination.CurrentPage = 1
	c.Refresh()
}

func (c *ListController) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.Pagination.CurrentPage = page
	c.Refresh()
}

// ToggleSort activates the field with ascending order, or flips the order if
// the field is already active, then refetches immediately.
func (c *ListController) ToggleSort(field string) {
	if !sortableFields[field] {
		c.Refresh()
		return
	}
	if c.Filters.SortBy == field {
		if c.Filters.SortOrder == SortAsc {
			c.Filters.SortOrder = SortDesc
		} else {
			c.Filters.SortOrder = SortAsc
		}
	} else {
		c.Filters.SortBy = field
		c.Filters.SortOrder = SortAsc
	}
	c.Pagination.CurrentPage = 1
	c.Refresh()
}

// RequestDelete stages a row delete; nothing is issued until confirmed.
func (c *ListController) RequestDelete(customer models.Customer) {
	c.PendingDelete = &DeleteTarget{ID: customer.ID, Name: customer.FullName()}
}

func (c *ListController) CancelDelete() {
	c.PendingDelete = nil
}

// ConfirmDelete deletes the staged customer and refetches the current page.
// Rows are never removed locally before the server confirms.
func (c *ListController) ConfirmDelete() error {
	if c.PendingDelete == nil {
		return nil
	}
	target := c.PendingDelete
	c.PendingDelete = nil
	if err := c.svc.DeleteCustomer(target.ID); err != nil {
		c.Err = errText(err, "Failed to delete customer")
		return err
	}
	c.Refresh()
	return nil
}

func (c *ListController) PageNumbers() []int {
	return PageNumbers(c.Pagination.CurrentPage, c.Pagination.TotalPages)
}

// ShowingFrom and ShowingTo bound the "Showing X to Y of Z" range text.
func (c *ListController) ShowingFrom() int {
	return (c.Pagination.CurrentPage-1)*c.Pagination.PerPage + 1
}

func (c *ListController) ShowingTo() int {
	return min(c.Pagination.CurrentPage*c.Pagination.PerPage, c.Pagination.Total)
}
