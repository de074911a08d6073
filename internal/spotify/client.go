// Package spotify implements the client credentials token exchange and the
// paginated walk of the new-releases listing endpoint.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"releasefeed/internal/config"
	"releasefeed/internal/domain"
)

// Client talks to the Spotify Web API.
type Client struct {
	http        *http.Client
	creds       clientcredentials.Config
	releasesURL string
	log         zerolog.Logger
}

// New creates a new Client from the resolved configuration. Credentials are
// not validated here; bad credentials surface as a token exchange failure.
func New(cfg config.SpotifyConfig, log zerolog.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		creds: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		releasesURL: cfg.ReleasesURL,
		log:         log,
	}
}

// Token exchanges the client credentials for a bearer token string. The
// token's expiry is not tracked; a single batch run finishes well inside it.
func (c *Client) Token(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	tok, err := c.creds.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	return tok.AccessToken, nil
}

// ReleaseSet is the aggregated result of walking the paginated listing.
// Complete is false when a page request came back with a non-success status;
// Albums then holds everything fetched before that page, in order.
type ReleaseSet struct {
	Albums   []domain.Album
	Complete bool

	// TruncatedAt and Status identify the failed page when Complete is false.
	TruncatedAt string
	Status      int
}

// NewReleases fetches every page of the new-releases listing, following the
// server-supplied next pointer exactly as given, and aggregates the album
// items in page order then in-page order.
//
// A non-success page status halts pagination and yields a partial ReleaseSet
// rather than an error; transport and decode failures are fatal.
func (c *Client) NewReleases(ctx context.Context, token string) (*ReleaseSet, error) {
	set := &ReleaseSet{Complete: true}

	requestURL := c.releasesURL
	pages := 0
	for requestURL != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := c.fetchPage(ctx, requestURL, token)
		var se *statusError
		if errors.As(err, &se) {
			c.log.Warn().
				Str("url", se.URL).
				Int("status", se.Status).
				Int("albums_so_far", len(set.Albums)).
				Msg("page request failed, keeping partial aggregate")
			set.Complete = false
			set.TruncatedAt = se.URL
			set.Status = se.Status
			return set, nil
		}
		if err != nil {
			return nil, err
		}

		for _, item := range page.Albums.Items {
			album := domain.Album{
				ID:          item.ID,
				Name:        item.Name,
				ReleaseDate: item.ReleaseDate,
				URL:         item.ExternalURLs.Spotify,
				Artists:     make([]domain.Artist, len(item.Artists)),
			}
			for i, artist := range item.Artists {
				album.Artists[i] = domain.Artist{
					ID:   artist.ID,
					Name: artist.Name,
					URL:  artist.ExternalURLs.Spotify,
				}
			}
			set.Albums = append(set.Albums, album)
		}

		pages++
		requestURL = page.Albums.Next
	}

	c.log.Info().
		Int("pages", pages).
		Int("albums", len(set.Albums)).
		Msg("new releases fetched")
	return set, nil
}

// statusError reports a page response with a non-success status code.
type statusError struct {
	URL    string
	Status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("page request %s returned status %d", e.URL, e.Status)
}

func (c *Client) fetchPage(ctx context.Context, pageURL, token string) (*newReleasesPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("page request error: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("page request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{URL: pageURL, Status: resp.StatusCode}
	}

	var page newReleasesPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("page decode error: %w", err)
	}
	return &page, nil
}

type newReleasesPage struct {
	Albums struct {
		Items []struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			ReleaseDate  string `json:"release_date"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
			Artists []struct {
				ID           string `json:"id"`
				Name         string `json:"name"`
				ExternalURLs struct {
					Spotify string `json:"spotify"`
				} `json:"external_urls"`
			} `json:"artists"`
		} `json:"items"`
		Next string `json:"next"`
	} `json:"albums"`
}
