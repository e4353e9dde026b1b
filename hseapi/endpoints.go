package hseapi

import "net/url"

// Endpoints holds the provider URLs the client talks to. The defaults point at
// the production HSE infrastructure; tests override them via WithEndpoints.
type Endpoints struct {
	// Authorize is the ADFS authorization endpoint.
	Authorize string
	// Token is the ADFS token endpoint.
	Token string
	// Search is the dump fuzzy-search endpoint.
	Search string
	// EmailSearch is a format string taking the escaped email address.
	EmailSearch string
	// RedirectURI is the mobile app's registered callback. The ru.hse.pf://
	// scheme is only meaningful to the app itself, which is why the redirect
	// chain has to be walked manually instead of followed.
	RedirectURI string
}

// DefaultEndpoints returns the production HSE endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Authorize:   "https://auth.hse.ru/adfs/oauth2/authorize/",
		Token:       "https://auth.hse.ru/adfs/oauth2/token/",
		Search:      "https://api.hseapp.ru/v2/dump/search/",
		EmailSearch: "https://api.hseapp.ru/v2/dump/email/%s",
		RedirectURI: "ru.hse.pf://auth.hse.ru/adfs/oauth2/android/ru.hse.pf/callback/",
	}
}

// userAgent mimics the original Android client; the backend rejects requests
// from identities it does not recognize.
const userAgent = "HSE App X/1.18.1; release (SM-A515F; Android/11; ru_RU; 1080x2400)"

// CombineBaseURLWithParams appends the encoded params to base. Nil or empty
// params leave base unchanged.
func CombineBaseURLWithParams(base string, params url.Values) string {
	if len(params) == 0 {
		return base
	}
	return base + "?" + params.Encode()
}
