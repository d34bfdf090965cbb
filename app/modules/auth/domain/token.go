// Package authdomain holds the legacy API token rules.
package authdomain

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
)

// Token sources, in lookup order.
const (
	TokenHeader     = "X-Ripple-Token"
	TokenQueryParam = "token"
	TokenQueryAlias = "k"
	TokenCookie     = "rt"
)

// ExtractToken returns the first non-empty token found on r, checking the
// header, the token and k query parameters, then the cookie.
func ExtractToken(r *http.Request) (string, bool) {
	if v := r.Header.Get(TokenHeader); v != "" {
		return v, true
	}

	q := r.URL.Query()
	if v := q.Get(TokenQueryParam); v != "" {
		return v, true
	}
	if v := q.Get(TokenQueryAlias); v != "" {
		return v, true
	}

	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}

// HashToken returns the lowercase hex MD5 of raw, the form stored in the
// tokens table.
//
// MD5 is not a safe password or token hash. It is kept only because existing
// rows were written with it.
func HashToken(raw string) string {
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
