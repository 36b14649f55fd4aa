package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/manishasuddala09/customercrudfrontend/internal/api"
	"github.com/manishasuddala09/customercrudfrontend/internal/controllers"
)

// Handler renders the admin pages. Each request builds the view's
// controller, drives it against the facade, and renders its state; nothing
// is kept between requests.
type Handler struct {
	svc     api.Service
	perPage int
}

func NewHandler(svc api.Service, perPage int) *Handler {
	if perPage < 1 {
		perPage = controllers.DefaultPerPage
	}
	return &Handler{svc: svc, perPage: perPage}
}

func (h *Handler) customerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		h.renderNotFound(c)
		return 0, false
	}
	return id, true
}

func (h *Handler) renderNotFound(c *gin.Context) {
	ctrl := controllers.NewDetailController(h.svc, 0)
	ctrl.NotFound = true
	c.HTML(http.StatusNotFound, "customer_detail.html", gin.H{"Ctrl": ctrl})
}

// CustomerList renders the list page. Filter and page state rides in the
// query string; clear and toggle_sort are the explicit filter commands.
func (h *Handler) CustomerList(c *gin.Context) {
	ctrl := controllers.NewListController(h.svc)
	ctrl.Pagination.PerPage = h.perPage

	filters := controllers.Filters{
		Search:    c.Query("search"),
		City:      c.Query("city"),
		State:     c.Query("state"),
		PinCode:   c.Query("pin_code"),
		SortBy:    c.DefaultQuery("sort_by", "id"),
		SortOrder: c.DefaultQuery("sort_order", controllers.SortAsc),
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	switch {
	case c.Query("clear") != "":
		ctrl.ClearFilters()
	case c.Query("toggle_sort") != "":
		ctrl.Filters = filters
		ctrl.Pagination.CurrentPage = page
		ctrl.ToggleSort(c.Query("toggle_sort"))
	default:
		ctrl.Filters = filters
		ctrl.Pagination.CurrentPage = page
		ctrl.Refresh()
	}

	c.HTML(http.StatusOK, "customer_list.html", newListView(ctrl))
}

// CustomerDetail renders one customer with its addresses.
func (h *Handler) CustomerDetail(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}
	ctrl := controllers.NewDetailController(h.svc, id)
	ctrl.Load()

	status := http.StatusOK
	if ctrl.NotFound {
		status = http.StatusNotFound
	}
	c.HTML(status, "customer_detail.html", gin.H{"Ctrl": ctrl})
}

// CustomerDeleteConfirm renders the confirmation step of the delete state
// machine. No delete is issued here.
func (h *Handler) CustomerDeleteConfirm(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}
	ctrl := controllers.NewDetailController(h.svc, id)
	ctrl.Load()
	if ctrl.Customer == nil {
		status := http.StatusOK
		if ctrl.NotFound {
			status = http.StatusNotFound
		}
		c.HTML(status, "customer_detail.html", gin.H{"Ctrl": ctrl})
		return
	}

	ctrl.RequestDelete()
	view := customerConfirmView(ctrl.PendingDelete, c.Query("from") == "list", safeReturn(c.Query("return")))
	c.HTML(http.StatusOK, "confirm_delete.html", view)
}

// CustomerDelete performs the confirmed delete and returns to the list (or
// to the filtered page the row was deleted from).
func (h *Handler) CustomerDelete(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}
	ctrl := controllers.NewDetailController(h.svc, id)
	ctrl.Load()
	if ctrl.Customer == nil {
		c.Redirect(http.StatusFound, safeReturn(c.PostForm("return")))
		return
	}

	ctrl.RequestDelete()
	returnTo := safeReturn(c.PostForm("return"))
	if err := ctrl.ConfirmDelete(); err != nil {
		view := customerConfirmView(&controllers.DeleteTarget{ID: id, Name: ctrl.Customer.FullName()}, false, returnTo)
		view.Err = ctrl.Err
		c.HTML(http.StatusOK, "confirm_delete.html", view)
		return
	}
	c.Redirect(http.StatusFound, returnTo)
}

// AddressDelete removes one address row, then the redirect re-fetches the
// whole customer record.
func (h *Handler) AddressDelete(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}
	addressID, err := strconv.Atoi(c.Param("addressId"))
	if err != nil || addressID < 1 {
		h.renderNotFound(c)
		return
	}

	ctrl := controllers.NewDetailController(h.svc, id)
	ctrl.DeleteAddress(addressID)
	if ctrl.Err != "" {
		c.HTML(http.StatusOK, "customer_detail.html", gin.H{"Ctrl": ctrl})
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/customers/%d", id))
}

// customerFormPayload carries the posted composite form. The address slices
// are parallel, one entry per rendered block.
type customerFormPayload struct {
	FirstName   string `form:"first_name"`
	LastName    string `form:"last_name"`
	PhoneNumber string `form:"phone_number"`
	Email       string `form:"email"`

	AddressIDs     []string `form:"address_id"`
	AddressDetails []string `form:"address_details"`
	Cities         []string `form:"city"`
	States         []string `form:"state"`
	PinCodes       []string `form:"pin_code"`
	Countries      []string `form:"country"`
	Primary        string   `form:"primary"`

	Action string `form:"action"`
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func (p *customerFormPayload) apply(ctrl *controllers.CustomerFormController) {
	ctrl.FirstName = p.FirstName
	ctrl.LastName = p.LastName
	ctrl.PhoneNumber = p.PhoneNumber
	ctrl.Email = p.Email

	blocks := make([]controllers.AddressBlock, 0, len(p.AddressDetails))
	for i := range p.AddressDetails {
		block := controllers.AddressBlock{
			AddressDetails: at(p.AddressDetails, i),
			City:           at(p.Cities, i),
			State:          at(p.States, i),
			PinCode:        at(p.PinCodes, i),
			Country:        at(p.Countries, i),
		}
		if id, err := strconv.Atoi(at(p.AddressIDs, i)); err == nil {
			block.ID = id
		}
		blocks = append(blocks, block)
	}
	if len(blocks) > 0 {
		ctrl.Addresses = blocks
	}

	primary := 0
	if idx, err := strconv.Atoi(p.Primary); err == nil {
		primary = idx
	}
	ctrl.SetPrimary(primary)
}

func (h *Handler) customerFormController(c *gin.Context) (*controllers.CustomerFormController, bool) {
	if c.Param("id") == "" {
		return controllers.NewCustomerFormController(h.svc, 0), true
	}
	id, ok := h.customerID(c)
	if !ok {
		return nil, false
	}
	return controllers.NewCustomerFormController(h.svc, id), true
}

// CustomerFormPage renders the create form, or the edit form seeded from
// the customer and address fetches.
func (h *Handler) CustomerFormPage(c *gin.Context) {
	ctrl, ok := h.customerFormController(c)
	if !ok {
		return
	}
	ctrl.Load()
	c.HTML(http.StatusOK, "customer_form.html", gin.H{"Ctrl": ctrl})
}

// CustomerFormSubmit handles the composite form posts: block add/remove
// actions re-render the form, save runs the upsert sequence.
func (h *Handler) CustomerFormSubmit(c *gin.Context) {
	ctrl, ok := h.customerFormController(c)
	if !ok {
		return
	}

	var payload customerFormPayload
	if err := c.ShouldBind(&payload); err != nil {
		c.HTML(http.StatusBadRequest, "customer_form.html", gin.H{"Ctrl": ctrl})
		return
	}
	payload.apply(ctrl)

	switch {
	case payload.Action == "add":
		ctrl.AddAddress()
		c.HTML(http.StatusOK, "customer_form.html", gin.H{"Ctrl": ctrl})
	case strings.HasPrefix(payload.Action, "remove_"):
		if idx, err := strconv.Atoi(strings.TrimPrefix(payload.Action, "remove_")); err == nil {
			ctrl.RemoveAddress(idx)
		}
		c.HTML(http.StatusOK, "customer_form.html", gin.H{"Ctrl": ctrl})
	default:
		err := ctrl.Submit()
		if err == nil {
			c.Redirect(http.StatusFound, "/customers")
			return
		}
		status := http.StatusOK
		if errors.Is(err, controllers.ErrInvalidForm) {
			status = http.StatusBadRequest
		}
		c.HTML(status, "customer_form.html", gin.H{"Ctrl": ctrl})
	}
}

type addressFormPayload struct {
	AddressDetails string `form:"address_details"`
	City           string `form:"city"`
	State          string `form:"state"`
	PinCode        string `form:"pin_code"`
	Country        string `form:"country"`
	IsPrimary      string `form:"is_primary"`
}

func (h *Handler) addressFormController(c *gin.Context) (*controllers.AddressFormController, bool) {
	id, ok := h.customerID(c)
	if !ok {
		return nil, false
	}
	addressID := 0
	if raw := c.Param("addressId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.renderNotFound(c)
			return nil, false
		}
		addressID = parsed
	}
	return controllers.NewAddressFormController(h.svc, id, addressID), true
}

func (h *Handler) AddressFormPage(c *gin.Context) {
	ctrl, ok := h.addressFormController(c)
	if !ok {
		return
	}
	ctrl.Load()
	c.HTML(http.StatusOK, "address_form.html", gin.H{"Ctrl": ctrl})
}

func (h *Handler) AddressFormSubmit(c *gin.Context) {
	ctrl, ok := h.addressFormController(c)
	if !ok {
		return
	}

	var payload addressFormPayload
	if err := c.ShouldBind(&payload); err != nil {
		c.HTML(http.StatusBadRequest, "address_form.html", gin.H{"Ctrl": ctrl})
		return
	}
	ctrl.Address = controllers.AddressBlock{
		ID:             ctrl.AddressID,
		AddressDetails: payload.AddressDetails,
		City:           payload.City,
		State:          payload.State,
		PinCode:        payload.PinCode,
		Country:        payload.Country,
		IsPrimary:      payload.IsPrimary != "",
	}

	err := ctrl.Submit()
	if err == nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("/customers/%d", ctrl.CustomerID))
		return
	}
	status := http.StatusOK
	if errors.Is(err, controllers.ErrInvalidForm) {
		status = http.StatusBadRequest
	}
	c.HTML(status, "address_form.html", gin.H{"Ctrl": ctrl})
}
