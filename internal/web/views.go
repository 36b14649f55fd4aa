package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/manishasuddala09/customercrudfrontend/internal/controllers"
)

// pageLink is one entry in the rendered pagination control.
type pageLink struct {
	Number   int
	URL      string
	Active   bool
	Ellipsis bool
}

type sortLink struct {
	Label  string
	URL    string
	Active bool
	Arrow  string
}

// listViewData is everything the customer list template renders: the
// controller state plus the canonical URLs for page, sort, and clear
// actions derived from it.
type listViewData struct {
	Ctrl        *controllers.ListController
	Pages       []pageLink
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
	SortLinks   []sortLink
	ClearURL    string
	ReturnParam string
}

// listValues encodes the controller's current filter and page state as the
// canonical query string, so the state survives the round trip.
func listValues(ctrl *controllers.ListController) url.Values {
	v := url.Values{}
	f := ctrl.Filters
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.State != "" {
		v.Set("state", f.State)
	}
	if f.PinCode != "" {
		v.Set("pin_code", f.PinCode)
	}
	v.Set("sort_by", f.SortBy)
	v.Set("sort_order", f.SortOrder)
	if ctrl.Pagination.CurrentPage > 1 {
		v.Set("page", strconv.Itoa(ctrl.Pagination.CurrentPage))
	}
	return v
}

func listURL(v url.Values) string {
	if len(v) == 0 {
		return "/customers"
	}
	return "/customers?" + v.Encode()
}

func newListView(ctrl *controllers.ListController) listViewData {
	base := listValues(ctrl)
	current := ctrl.Pagination.CurrentPage

	pageURL := func(page int) string {
		v := listValues(ctrl)
		v.Set("page", strconv.Itoa(page))
		if page <= 1 {
			v.Del("page")
		}
		return listURL(v)
	}

	view := listViewData{
		Ctrl:     ctrl,
		HasPrev:  current > 1,
		HasNext:  current < ctrl.Pagination.TotalPages,
		PrevURL:  pageURL(current - 1),
		NextURL:  pageURL(current + 1),
		ClearURL: "/customers?clear=1",
		// left raw: the template's URL context escapes it
		ReturnParam: listURL(base),
	}

	for _, n := range ctrl.PageNumbers() {
		if n == controllers.Ellipsis {
			view.Pages = append(view.Pages, pageLink{Ellipsis: true})
			continue
		}
		view.Pages = append(view.Pages, pageLink{
			Number: n,
			URL:    pageURL(n),
			Active: n == current,
		})
	}

	for _, s := range []struct{ field, label string }{
		{"id", "ID"},
		{"first_name", "Name"},
		{"phone_number", "Phone"},
	} {
		v := listValues(ctrl)
		v.Del("page")
		v.Set("toggle_sort", s.field)
		link := sortLink{
			Label:  s.label,
			URL:    listURL(v),
			Active: ctrl.Filters.SortBy == s.field,
		}
		if link.Active {
			if ctrl.Filters.SortOrder == controllers.SortAsc {
				link.Arrow = "↑"
			} else {
				link.Arrow = "↓"
			}
		}
		view.SortLinks = append(view.SortLinks, link)
	}

	return view
}

// confirmViewData drives the shared delete-confirmation page.
type confirmViewData struct {
	Title     string
	Message   string
	Err       string
	Action    string
	ReturnTo  string
	CancelURL string
}

func customerConfirmView(target *controllers.DeleteTarget, fromList bool, returnTo string) confirmViewData {
	message := fmt.Sprintf("Are you sure you want to delete %s?", target.Name)
	cancel := fmt.Sprintf("/customers/%d", target.ID)
	if fromList {
		cancel = returnTo
	} else {
		message += " This will also delete all associated addresses."
	}
	return confirmViewData{
		Title:     "Delete Customer",
		Message:   message,
		Action:    fmt.Sprintf("/customers/%d/delete", target.ID),
		ReturnTo:  returnTo,
		CancelURL: cancel,
	}
}

// safeReturn keeps redirects local.
func safeReturn(v string) string {
	if strings.HasPrefix(v, "/") && !strings.HasPrefix(v, "//") {
		return v
	}
	return "/customers"
}
