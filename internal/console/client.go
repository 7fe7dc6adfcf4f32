package console

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"medcatalog/internal/domain"
	"medcatalog/internal/http/handlers"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
	Fields  []string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%d %s (%s)", e.Status, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// Client talks to the JSON API with the admin credential attached.
type Client struct {
	BaseURL  string
	Password string
	Timeout  time.Duration
}

func NewClient(baseURL, password string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Password: password, Timeout: 10 * time.Second}
}

func (c *Client) url(parts ...string) string {
	p := c.BaseURL + "/api"
	for _, s := range parts {
		p += "/" + url.PathEscape(s)
	}
	return p
}

func (c *Client) send(a *fiber.Agent, body any, out any) error {
	a.Timeout(c.Timeout)
	if c.Password != "" {
		a.Set(handlers.HeaderAdminPassword, c.Password)
	}
	if body != nil {
		a.JSON(body)
	}
	code, b, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request: %w", errs[0])
	}
	if code < 200 || code > 299 {
		var e struct {
			Error  string   `json:"error"`
			Fields []string `json:"fields"`
		}
		_ = json.Unmarshal(b, &e)
		if e.Error == "" {
			e.Error = utils.StatusMessage(code)
		}
		return &APIError{Status: code, Message: e.Error, Fields: e.Fields}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) Listings() ([]domain.Listing, error) {
	var out []domain.Listing
	err := c.send(fiber.Get(c.url("listings")), nil, &out)
	return out, err
}

func (c *Client) CreateListing(payload any) (domain.Listing, error) {
	var out domain.Listing
	err := c.send(fiber.Post(c.url("listings")), payload, &out)
	return out, err
}

func (c *Client) UpdateListing(id string, payload any) (domain.Listing, error) {
	var out domain.Listing
	err := c.send(fiber.Put(c.url("listings", id)), payload, &out)
	return out, err
}

func (c *Client) DeleteListing(id string) error {
	return c.send(fiber.Delete(c.url("listings", id)), nil, nil)
}

func (c *Client) Consultations() ([]domain.Consultation, error) {
	var out []domain.Consultation
	err := c.send(fiber.Get(c.url("consultations")), nil, &out)
	return out, err
}

func (c *Client) CreateConsultation(payload any) (domain.Consultation, error) {
	var out domain.Consultation
	err := c.send(fiber.Post(c.url("consultations")), payload, &out)
	return out, err
}

func (c *Client) UpdateConsultation(id string, payload any) (domain.Consultation, error) {
	var out domain.Consultation
	err := c.send(fiber.Put(c.url("consultations", id)), payload, &out)
	return out, err
}

func (c *Client) DeleteConsultation(id string) error {
	return c.send(fiber.Delete(c.url("consultations", id)), nil, nil)
}
