package service

import (
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

// ShareLink is the page URL a printed code points at.
func (g DefaultQRGenerator) ShareLink(restaurantQuery, menuType string) string {
	params := url.Values{}
	params.Set("restaurant", restaurantQuery)
	params.Set("menuType", menuType)
	return strings.TrimRight(g.BaseURL, "/") + "/?" + params.Encode()
}

func (g DefaultQRGenerator) Generate(restaurantQuery, menuType string) ([]byte, error) {
	return qrcode.Encode(g.ShareLink(restaurantQuery, menuType), qrcode.Medium, 256)
}
