// Package identity extracts customer auto-fill data from the identity
// provider's session token. The client holds no verification keys; the
// backend is the verifier. Claims are only used to prefill checkout
// forms, so an unverified parse is acceptable here and nowhere else.
package identity

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
)

var _ port.CustomerPrefill = Prefiller{}

type Prefiller struct {
	parser *jwt.Parser
}

func NewPrefiller() Prefiller {
	return Prefiller{parser: jwt.NewParser()}
}

// Prefill reads standard OIDC profile claims from the token.
func (p Prefiller) Prefill(token string) (domain.CustomerInfo, error) {
	const op = "Prefiller.Prefill"

	claims := jwt.MapClaims{}
	_, _, err := p.parser.ParseUnverified(token, claims)
	if err != nil {
		return domain.CustomerInfo{}, fmt.Errorf("%s: %w", op, err)
	}

	info := domain.CustomerInfo{
		FirstName: stringClaim(claims, "given_name"),
		LastName:  stringClaim(claims, "family_name"),
		Email:     stringClaim(claims, "email"),
		Phone:     stringClaim(claims, "phone_number"),
	}

	// some providers only set the combined display name
	if info.FirstName == "" && info.LastName == "" {
		info.FirstName, info.LastName = splitName(stringClaim(claims, "name"))
	}
	return info, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.Fields(full)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}
