package seed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"school-cms/pkg/logger"
)

// ErrConflict signals that the record already exists on the server. The
// sync loop logs it and moves on; it means a previous run already
// migrated the record.
var ErrConflict = errors.New("record already exists")

// Client drives incremental seeding over the live API: login once, then
// best-effort creates with conflicts skipped.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	token      string
}

// NewClient creates a sync client for the given API root
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SyncSummary reports the outcome of a sync run
type SyncSummary struct {
	Created int
	Skipped int
	Failed  int
}

// Login authenticates against the API and stores the bearer token for
// subsequent calls.
func (c *Client) Login(username, password string) error {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Post(c.BaseURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if result.Token == "" {
		return errors.New("login response carried no token")
	}

	c.token = result.Token
	return nil
}

// CreateSection posts one content section. Returns ErrConflict when the
// id already exists.
func (c *Client) CreateSection(s SectionSeed, pageID string) error {
	return c.post("/content", map[string]interface{}{
		"id":       s.ID,
		"type":     s.Type,
		"label":    s.Label,
		"content":  s.Content,
		"page_id":  pageID,
		"position": s.Position,
	})
}

// CreateStaff posts one staff record. Returns ErrConflict when the email
// already exists.
func (c *Client) CreateStaff(m StaffSeed) error {
	return c.post("/staff", map[string]interface{}{
		"name":        m.Name,
		"role":        m.Role,
		"email":       m.Email,
		"phone":       m.Phone,
		"bio":         m.Bio,
		"image_url":   m.ImageURL,
		"is_director": m.IsDirector,
		"position":    m.Position,
	})
}

// Sync pushes every section and staff record of the site definition.
// Conflicts are skipped, other failures are logged and the loop keeps
// going; the summary tells the operator what happened.
func (c *Client) Sync(site Site) SyncSummary {
	log := logger.Get().WithComponent("seed")
	var summary SyncSummary

	for _, p := range site.Pages {
		for _, s := range p.Sections {
			err := c.CreateSection(s, p.ID)
			switch {
			case err == nil:
				summary.Created++
			case errors.Is(err, ErrConflict):
				log.Info("Section already exists, skipping", logger.SectionID(s.ID))
				summary.Skipped++
			default:
				log.Error("Failed to create section", err, logger.SectionID(s.ID))
				summary.Failed++
			}
		}
	}

	for _, m := range site.Staff {
		err := c.CreateStaff(m)
		switch {
		case err == nil:
			summary.Created++
		case errors.Is(err, ErrConflict):
			log.Info("Staff member already exists, skipping", logger.String("email", m.Email))
			summary.Skipped++
		default:
			log.Error("Failed to create staff member", err, logger.String("email", m.Email))
			summary.Failed++
		}
	}

	log.Info("Sync completed",
		logger.CreatedCount(summary.Created),
		logger.SkippedCount(summary.Skipped),
		logger.FailedCount(summary.Failed),
	)
	return summary
}

func (c *Client) post(path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	default:
		return fmt.Errorf("POST %s failed with status %d", path, resp.StatusCode)
	}
}
