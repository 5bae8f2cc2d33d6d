package fetcher

import (
	"strings"
	"time"

	"getjwt/internal/browser"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes a cookie whose value is a JWT.
type TokenInfo struct {
	Cookie    string
	ExpiresAt time.Time
	HasExpiry bool
}

// InspectTokens reports the cookies holding JWTs. Signatures are not checked;
// this only reads the exp claim for diagnostics.
func InspectTokens(cookies []browser.Cookie) []TokenInfo {
	parser := jwt.NewParser()
	var tokens []TokenInfo
	for _, c := range cookies {
		if strings.Count(c.Value, ".") != 2 {
			continue
		}
		token, _, err := parser.ParseUnverified(c.Value, jwt.MapClaims{})
		if err != nil {
			continue
		}
		info := TokenInfo{Cookie: c.Name}
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			info.ExpiresAt = exp.Time
			info.HasExpiry = true
		}
		tokens = append(tokens, info)
	}
	return tokens
}
