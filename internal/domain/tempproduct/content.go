package tempproduct

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"frame-pricing/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

const (
	TagTempProduct = "temp-product"
	TagAutoDelete  = "auto-delete"

	ProductType = "Temporary Product"
	Vendor      = "Dynamic Pricing"
)

func Title(spec pricing.DimensionSpec) string {
	return fmt.Sprintf("Custom Frame %d×%dmm - %s", spec.Height(), spec.Width(), spec.Material().DisplayName())
}

func DescriptionHTML(spec pricing.DimensionSpec, price decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("<p><strong>Custom Frame</strong></p>")
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li>Height: %dmm</li>", spec.Height())
	fmt.Fprintf(&b, "<li>Width: %dmm</li>", spec.Width())
	fmt.Fprintf(&b, "<li>Material: %s</li>", html.EscapeString(spec.Material().DisplayName()))
	fmt.Fprintf(&b, "<li>Price: %s</li>", pricing.FormatPrice(price))
	b.WriteString("</ul>")
	b.WriteString("<p><em>This item was created for your custom order.</em></p>")
	return b.String()
}

func Tags(material pricing.Material) []string {
	return []string{TagTempProduct, TagAutoDelete, "material-" + material.String()}
}

// NormalizeImageURL upgrades protocol-relative URLs to https and rejects
// anything that is not an absolute http(s) URL.
func NormalizeImageURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}

type CartProperty struct {
	Key   string
	Value string
}

// CartItem is what the storefront posts to its cart endpoint.
type CartItem struct {
	VariantID  string
	Quantity   int
	Properties []CartProperty
}

func NewCartItem(variantID string, quantity int, spec pricing.DimensionSpec) CartItem {
	if quantity < 1 {
		quantity = 1
	}
	return CartItem{
		VariantID: variantID,
		Quantity:  quantity,
		Properties: []CartProperty{
			{Key: "Height", Value: strconv.Itoa(spec.Height()) + "mm"},
			{Key: "Width", Value: strconv.Itoa(spec.Width()) + "mm"},
			{Key: "Material", Value: spec.Material().DisplayName()},
		},
	}
}
