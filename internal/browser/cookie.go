package browser

import (
	"github.com/chromedp/cdproto/network"
	"github.com/go-rod/rod/lib/proto"
)

// Cookie is a browser cookie as reported by the DevTools protocol.
type Cookie struct {
	Name         string  `json:"name"`
	Value        string  `json:"value"`
	Domain       string  `json:"domain"`
	Path         string  `json:"path"`
	Expires      float64 `json:"expires"`
	Size         int64   `json:"size"`
	HTTPOnly     bool    `json:"httpOnly"`
	Secure       bool    `json:"secure"`
	Session      bool    `json:"session"`
	SameSite     string  `json:"sameSite,omitempty"`
	Priority     string  `json:"priority,omitempty"`
	SourceScheme string  `json:"sourceScheme,omitempty"`
	SourcePort   int64   `json:"sourcePort"`
}

func fromNetworkCookies(in []*network.Cookie) []Cookie {
	out := make([]Cookie, 0, len(in))
	for _, c := range in {
		if c == nil {
			continue
		}
		out = append(out, Cookie{
			Name:         c.Name,
			Value:        c.Value,
			Domain:       c.Domain,
			Path:         c.Path,
			Expires:      c.Expires,
			Size:         int64(c.Size),
			HTTPOnly:     c.HTTPOnly,
			Secure:       c.Secure,
			Session:      c.Session,
			SameSite:     string(c.SameSite),
			Priority:     string(c.Priority),
			SourceScheme: string(c.SourceScheme),
			SourcePort:   int64(c.SourcePort),
		})
	}
	return out
}

func fromProtoCookies(in []*proto.NetworkCookie) []Cookie {
	out := make([]Cookie, 0, len(in))
	for _, c := range in {
		if c == nil {
			continue
		}
		out = append(out, Cookie{
			Name:         c.Name,
			Value:        c.Value,
			Domain:       c.Domain,
			Path:         c.Path,
			Expires:      float64(c.Expires),
			Size:         int64(c.Size),
			HTTPOnly:     c.HTTPOnly,
			Secure:       c.Secure,
			Session:      c.Session,
			SameSite:     string(c.SameSite),
			Priority:     string(c.Priority),
			SourceScheme: string(c.SourceScheme),
			SourcePort:   int64(c.SourcePort),
		})
	}
	return out
}
