package noip

import "context"

//go:generate mockgen -destination=../mock/noip/mock_noip.go -package=mock_noip . Updater,IPResolver

// UpdateRequest represents a single dynamic DNS update
type UpdateRequest struct {
	Hostname string
	Username string
	Password string
	// MyIP may be empty in which case No-IP uses the request's source address
	MyIP string
}

// Updater sends dynamic DNS updates and returns the raw response body
type Updater interface {
	Update(ctx context.Context, req UpdateRequest) (string, error)
}

// IPResolver looks up the public IPv4 address of this host
type IPResolver interface {
	PublicIPv4(ctx context.Context) (string, error)
}
