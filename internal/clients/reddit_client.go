package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// CommunityPost is one piece of social context shown on a catalog detail page.
type CommunityPost struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Subreddit string `json:"subreddit"`
	Score     int    `json:"score"`
}

// SocialMediaClientInterface surfaces community discussion for a career or
// specialization name. Failures degrade to an empty list, never an error,
// since the detail page works without enrichment.
type SocialMediaClientInterface interface {
	SearchPosts(ctx context.Context, query string, limit int) []CommunityPost
}

// RedditClient searches Reddit's public JSON API.
type RedditClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewRedditClient(userAgent string) *RedditClient {
	if userAgent == "" {
		userAgent = "careercompass/1.0"
	}
	return &RedditClient{
		baseURL:    "https://www.reddit.com",
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				Permalink string `json:"permalink"`
				Subreddit string `json:"subreddit"`
				Score     int    `json:"score"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (c *RedditClient) SearchPosts(ctx context.Context, query string, limit int) []CommunityPost {
	if limit <= 0 || limit > 25 {
		limit = 5
	}

	searchURL := fmt.Sprintf("%s/search.json?q=%s&sort=relevance&limit=%d",
		c.baseURL, url.QueryEscape(query+" career"), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("reddit search failed for %q: %v", query, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("reddit search for %q returned status %d", query, resp.StatusCode)
		return nil
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		log.Printf("reddit response decode failed for %q: %v", query, err)
		return nil
	}

	posts := make([]CommunityPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, CommunityPost{
			Title:     child.Data.Title,
			URL:       c.baseURL + child.Data.Permalink,
			Subreddit: child.Data.Subreddit,
			Score:     child.Data.Score,
		})
	}
	return posts
}
