package web_serializers

import (
	"github.com/google/uuid"
	"github.com/stretchr/goweb/context"
)

// A BaseRestController is just a controller that tags each request
// with an X-Request-Id and always sets the Vary header to "Accept",
// since most REST APIs will change their response based on the
// Accept header.  All the Vary header really does is tell clients,
// "If your Accept header changes, you shouldn't use the cached
// value."
type BaseRestController struct{}

// Before assigns the request an id, so that responses can be matched
// up with log lines, before the correct method has run.
func (controller *BaseRestController) Before(ctx context.Context) error {
	ctx.HttpResponseWriter().Header().Set("X-Request-Id", uuid.NewString())
	return nil
}

// After makes sure that the Vary header is set to Accept, after the
// correct method has run.  This is for client caching purposes.
func (controller *BaseRestController) After(ctx context.Context) error {
	ctx.HttpResponseWriter().Header().Set("Vary", "Accept")
	return nil
}
