package noip

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"
)

// DefaultIPInfoURL the ip echo service used to discover our public address
const DefaultIPInfoURL = "https://ipinfo.io/json"

type ipInfoResponse struct {
	IP string `json:"ip"`
}

// IPInfo implements IPResolver using an ip echo service returning {"ip": "..."}
type IPInfo struct {
	url        string
	userAgent  string
	httpClient *http.Client
}

// NewIPInfo returns a new IPInfo resolver. An empty url uses DefaultIPInfoURL
func NewIPInfo(url, userAgent string) *IPInfo {
	if url == "" {
		url = DefaultIPInfoURL
	}

	return &IPInfo{
		url:        url,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// PublicIPv4 returns the public IPv4 address reported by the echo service
func (i *IPInfo) PublicIPv4(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.url, http.NoBody)

	if err != nil {
		return "", err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", i.userAgent)

	resp, err := i.httpClient.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &UnexpectedStatusError{URL: i.url, StatusCode: resp.StatusCode}
	}

	info := ipInfoResponse{}

	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}

	ip := net.ParseIP(info.IP)

	if ip == nil || ip.To4() == nil {
		return "", errors.New("ip service did not return an ipv4 address: " + info.IP)
	}

	return ip.String(), nil
}
