package authController

import (
	"context"
	"eduapi/config"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the subset of the provider profile the platform consumes.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Provider abstracts the OAuth identity provider so the login flow does not
// care whether credentials are configured.
type Provider interface {
	Enabled() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error)
}

// NewProvider selects the real Google client or the disabled stub, once at
// process start.
func NewProvider(cfg *config.Config) Provider {
	if !cfg.GoogleOAuthEnabled() {
		return disabledProvider{}
	}
	return &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		client: resty.New(),
	}
}

type googleProvider struct {
	oauth  *oauth2.Config
	client *resty.Client
}

func (*googleProvider) Enabled() bool { return true }

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.oauth.Exchange(ctx, code)
}

func (p *googleProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	var profile Profile
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&profile).
		Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("userinfo request failed: %s", resp.Status())
	}
	if profile.Email == "" {
		return nil, errors.New("provider profile has no email")
	}
	return &profile, nil
}

var errOAuthDisabled = errors.New("google oauth is not configured")

type disabledProvider struct{}

func (disabledProvider) Enabled() bool             { return false }
func (disabledProvider) AuthCodeURL(string) string { return "" }

func (disabledProvider) Exchange(context.Context, string) (*oauth2.Token, error) {
	return nil, errOAuthDisabled
}

func (disabledProvider) FetchProfile(context.Context, *oauth2.Token) (*Profile, error) {
	return nil, errOAuthDisabled
}
