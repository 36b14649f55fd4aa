package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/manishasuddala09/customercrudfrontend/internal/models"
)

// Client is the HTTP implementation of Service. Every method is a single
// best-effort round trip to the remote customer API; there are no retries
// and no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against the given base URL. The http.Client is
// injected so tests can intercept the transport.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Error carries the HTTP status and the human-readable message extracted
// from a non-2xx response body.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// IsNotFound reports whether err is an API error with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ListQuery holds every list parameter. All fields are always sent, empty
// string meaning unfiltered.
type ListQuery struct {
	Search    string
	City      string
	State     string
	PinCode   string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

func (q ListQuery) values() url.Values {
	params := url.Values{}
	params.Set("search", q.Search)
	params.Set("city", q.City)
	params.Set("state", q.State)
	params.Set("pin_code", q.PinCode)
	params.Set("sort_by", q.SortBy)
	params.Set("sort_order", q.SortOrder)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))
	return params
}

// envelope is the response shape of the remote API: a data payload plus an
// optional pagination block.
type envelope struct {
	Data       json.RawMessage        `json:"data"`
	Pagination *models.PaginationInfo `json:"pagination"`
}

func (c *Client) do(method, path string, query url.Values, payload interface{}) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{StatusCode: resp.StatusCode, Message: errorMessage(bodyBytes)}
	}

	if len(bodyBytes) == 0 {
		return &envelope{}, nil
	}

	var env envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &env, nil
}

// errorMessage extracts the message field of an error body, preferring
// "message" over "error", matching what the backend actually sends.
func errorMessage(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return ""
	}
	if er.Message != "" {
		return er.Message
	}
	return er.Error
}

func (c *Client) ListCustomers(q ListQuery) ([]models.Customer, *models.PaginationInfo, error) {
	env, err := c.do(http.MethodGet, "/customers", q.values(), nil)
	if err != nil {
		return nil, nil, err
	}

	var customers []models.Customer
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &customers); err != nil {
			return nil, nil, fmt.Errorf("failed to decode customer list: %w", err)
		}
	}
	for i := range customers {
		if err := customers[i].Validate(); err != nil {
			return nil, nil, fmt.Errorf("malformed customer list: %w", err)
		}
	}
	return customers, env.Pagination, nil
}

func (c *Client) GetCustomer(id int) (*models.Customer, error) {
	env, err := c.do(http.MethodGet, "/customers/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCustomer(env.Data)
}

func (c *Client) CreateCustomer(req models.CustomerRequest) (*models.Customer, error) {
	env, err := c.do(http.MethodPost, "/customers", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeCustomer(env.Data)
}

func (c *Client) UpdateCustomer(id int, req models.CustomerRequest) (*models.Customer, error) {
	env, err := c.do(http.MethodPut, "/customers/"+strconv.Itoa(id), nil, req)
	if err != nil {
		return nil, err
	}
	return decodeCustomer(env.Data)
}

func (c *Client) DeleteCustomer(id int) error {
	_, err := c.do(http.MethodDelete, "/customers/"+strconv.Itoa(id), nil, nil)
	return err
}

func (c *Client) ListAddresses(customerID int) ([]models.Address, error) {
	env, err := c.do(http.MethodGet, "/customers/"+strconv.Itoa(customerID)+"/addresses", nil, nil)
	if err != nil {
		return nil, err
	}

	var addresses []models.Address
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &addresses); err != nil {
			return nil, fmt.Errorf("failed to decode address list: %w", err)
		}
	}
	for i := range addresses {
		if err := addresses[i].Validate(); err != nil {
			return nil, fmt.Errorf("malformed address list: %w", err)
		}
	}
	return addresses, nil
}

func (c *Client) CreateAddress(req models.AddressRequest) (*models.Address, error) {
	env, err := c.do(http.MethodPost, "/addresses", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeAddress(env.Data)
}

func (c *Client) UpdateAddress(id int, req models.AddressRequest) (*models.Address, error) {
	env, err := c.do(http.MethodPut, "/addresses/"+strconv.Itoa(id), nil, req)
	if err != nil {
		return nil, err
	}
	return decodeAddress(env.Data)
}

func (c *Client) DeleteAddress(id int) error {
	_, err := c.do(http.MethodDelete, "/addresses/"+strconv.Itoa(id), nil, nil)
	return err
}

func decodeCustomer(data json.RawMessage) (*models.Customer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty customer in response")
	}
	var customer models.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		return nil, fmt.Errorf("failed to decode customer: %w", err)
	}
	if err := customer.Validate(); err != nil {
		return nil, fmt.Errorf("malformed customer: %w", err)
	}
	return &customer, nil
}

func decodeAddress(data json.RawMessage) (*models.Address, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty address in response")
	}
	var address models.Address
	if err := json.Unmarshal(data, &address); err != nil {
		return nil, fmt.Errorf("failed to decode address: %w", err)
	}
	if err := address.Validate(); err != nil {
		return nil, fmt.Errorf("malformed address: %w", err)
	}
	return &address, nil
}
