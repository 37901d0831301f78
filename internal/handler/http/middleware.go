package http

import (
	"net/http"

	"github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/middleware"
)

// sessionHeader identifies guest carts. Authenticated requests use the JWT
// user ID instead, so a signed-in user keeps the same cart on every device.
const sessionHeader = "X-Session-ID"

// cartOwner resolves the cart owner for a request: the authenticated user ID
// when present, otherwise the guest session header.
func cartOwner(r *http.Request) (string, error) {
	if userID := middleware.UserIDFromContext(r.Context()); userID != "" {
		return userID, nil
	}
	if sessionID := r.Header.Get(sessionHeader); sessionID != "" {
		return "session:" + sessionID, nil
	}
	return "", errors.InvalidInput("missing bearer token or X-Session-ID header")
}
