package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"careercompass/pkg/utils"
)

// UsersAPIClientInterface talks to the external user directory.
type UsersAPIClientInterface interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	Skills(ctx context.Context, userID uuid.UUID) (map[string]int, error)
}

// UsersAPIClient is an HTTP client for the users service.
type UsersAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewUsersAPIClient(baseURL string) *UsersAPIClient {
	return &UsersAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Exists checks the directory for the user. Directory outages are reported
// as ErrUserDirectoryUnavailable rather than treated as "not found".
func (c *UsersAPIClient) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	url := fmt.Sprintf("%s/api/users/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("build user lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrUserDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: status %d", utils.ErrUserDirectoryUnavailable, resp.StatusCode)
	}
}

// Skills fetches the user's self-reported skill levels. A missing skills
// profile is not an error; it returns an empty map.
func (c *UsersAPIClient) Skills(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	url := fmt.Sprintf("%s/api/users/%s/skills", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build skills request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUserDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return map[string]int{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", utils.ErrUserDirectoryUnavailable, resp.StatusCode)
	}

	var parsed struct {
		Skills []struct {
			Name  string `json:"name"`
			Level int    `json:"level"`
		} `json:"skills"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode skills response: %w", err)
	}

	skills := make(map[string]int, len(parsed.Skills))
	for _, s := range parsed.Skills {
		skills[s.Name] = s.Level
	}
	return skills, nil
}
