package lookup

import (
	"errors"

	"github.com/dradle/my-bike-rent/internal/customer"
	"github.com/dradle/my-bike-rent/internal/gviz"
	"github.com/dradle/my-bike-rent/internal/sheet"
)

var ErrEmptyIdentifier = errors.New("empty identifier")

// Stable labels for logs, metrics and events.
const (
	KindOK          = "ok"
	KindInvalid     = "invalid"
	KindTransport   = "transport"
	KindMalformed   = "malformed"
	KindAPI         = "api"
	KindStructure   = "structure"
	KindIdentity    = "identity"
	KindUnavailable = "unavailable"
	KindInternal    = "internal"
)

// Kind classifies a lookup error. A nil error is KindOK.
func Kind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrEmptyIdentifier):
		return KindInvalid
	case errors.Is(err, gviz.ErrUpstreamUnavailable):
		return KindUnavailable
	case errors.Is(err, gviz.ErrTransport):
		return KindTransport
	case errors.Is(err, sheet.ErrMalformedResponse):
		return KindMalformed
	case errors.Is(err, sheet.ErrAPI):
		return KindAPI
	case errors.Is(err, sheet.ErrStructure):
		return KindStructure
	case errors.Is(err, customer.ErrIdentityMismatch):
		return KindIdentity
	default:
		return KindInternal
	}
}
