package shopify

import (
	"regexp"
	"strings"
)

const productGIDPrefix = "gid://shopify/Product/"

var shopDomainPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-]*\.myshopify\.com$`)

// ValidShopDomain accepts only canonical *.myshopify.com hosts.
func ValidShopDomain(shop string) bool {
	return shopDomainPattern.MatchString(shop)
}

// ProductGID accepts either a bare numeric id or a full gid.
func ProductGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return productGIDPrefix + id
}

// LegacyID returns the trailing segment of a gid, which is what the storefront uses.
func LegacyID(gid string) string {
	if i := strings.LastIndex(gid, "/"); i >= 0 {
		return gid[i+1:]
	}
	return gid
}
