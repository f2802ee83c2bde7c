package clientctx

import "context"

// Context key type
type contextKey string

const clientAddressKey contextKey = "client_address"

// Unknown is reported when no client address was recorded
const Unknown = "unknown"

// SetClientAddress adds the client network address to the request context
func SetClientAddress(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, clientAddressKey, addr)
}

// GetClientAddress retrieves the client network address from the request context
func GetClientAddress(ctx context.Context) string {
	addr, ok := ctx.Value(clientAddressKey).(string)
	if !ok || addr == "" {
		return Unknown
	}
	return addr
}
