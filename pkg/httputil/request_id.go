package httputil

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const (
	HeaderRequestID        = "X-Request-ID"
	ctxKeyReqID     ctxKey = "req_id"
)

// MiddlewareRequestID propagates an inbound X-Request-ID or generates one.
func MiddlewareRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, reqID)

		ctx := context.WithValue(r.Context(), ctxKeyReqID, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func FromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyReqID).(string)
	return v, ok
}
