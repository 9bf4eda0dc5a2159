package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/peeq/core"
)

// Schema identifies which vendor export layout a file uses.
type Schema int

const (
	// SchemaUnknown means the header row matched no known layout.
	SchemaUnknown Schema = iota
	// SchemaA is the Shopify-style export (handle/vendor/variant_* fields).
	SchemaA
	// SchemaB is the marketplace export (brand/category/product_url fields).
	SchemaB
)

// String returns a human-readable schema name for logs and diagnostics.
func (s Schema) String() string {
	switch s {
	case SchemaA:
		return "shopify"
	case SchemaB:
		return "marketplace"
	default:
		return "unknown"
	}
}

// record is one CSV row keyed by header name. Missing columns are absent
// from the map; lookups fall back to the empty string.
type record map[string]string

func (r record) get(keys ...string) string {
	for _, key := range keys {
		if v := r[key]; v != "" {
			return v
		}
	}
	return ""
}

// detectSchema inspects a header row and decides which mapping applies.
// Shopify-style markers win over marketplace markers so merged exports
// that carry both field families map consistently.
func detectSchema(header []string) Schema {
	fields := make(map[string]bool, len(header))
	for _, name := range header {
		fields[strings.ToLower(strings.TrimSpace(name))] = true
	}

	if fields["handle"] || fields["vendor"] || fields["variant_price"] || fields["product_title"] {
		return SchemaA
	}
	if fields["name"] && (fields["brand"] || fields["product_url"] || fields["image_url"]) {
		return SchemaB
	}
	return SchemaUnknown
}

// mapRecord dispatches a row to the schema-specific mapping.
func mapRecord(schema Schema, rec record, fileName string) (core.Product, error) {
	switch schema {
	case SchemaA:
		return mapSchemaA(rec, fileName)
	case SchemaB:
		return mapSchemaB(rec, fileName)
	default:
		return core.Product{}, ErrUnknownSchema
	}
}

// mapSchemaA maps a Shopify-style export row into a Product.
//
// The id prefers the native product id, then the variant id, and finally a
// file-qualified fallback so rows without native ids cannot collide across
// files.
func mapSchemaA(rec record, fileName string) (core.Product, error) {
	handle := rec.get("handle")

	id := rec.get("product_id", "variant_id")
	if id == "" {
		if fallback := rec.get("id", "handle"); fallback != "" {
			id = fileName + "-" + fallback
		}
	}
	if id == "" {
		return core.Product{}, fmt.Errorf("%w: no product_id, variant_id, id, or handle", ErrNoIdentity)
	}

	vendor := rec.get("vendor")
	productUrl := handle
	if base := baseUrlForVendor(vendor); base != "" {
		productUrl = base + "/products/" + handle
	}

	options := joinNonEmpty(" ", rec.get("option1"), rec.get("option2"), rec.get("option3"))
	description := strings.TrimSpace(strings.TrimSpace(rec.get("tags")) + " " + options)

	return core.Product{
		Id:          id,
		Name:        rec.get("product_title", "title"),
		Description: description,
		Price:       parsePrice(rec.get("variant_price", "price")),
		Category:    rec.get("product_type"),
		ImageUrl:    firstImage(rec.get("product_images")),
		Brand:       vendor,
		ProductUrl:  productUrl,
		SourceFile:  fileName,
	}, nil
}

// mapSchemaB maps a marketplace export row into a Product.
//
// Marketplace rows already carry absolute product URLs, so the URL is
// passed through untouched. The description is synthesized from the
// descriptive columns the layout provides.
func mapSchemaB(rec record, fileName string) (core.Product, error) {
	id := rec.get("product_id")
	if id == "" {
		if fallback := rec.get("id"); fallback != "" {
			id = fileName + "-" + fallback
		}
	}
	if id == "" {
		return core.Product{}, fmt.Errorf("%w: no product_id or id", ErrNoIdentity)
	}

	description := joinNonEmpty(" ",
		rec.get("brand"),
		rec.get("category"),
		rec.get("gender"),
		rec.get("discount_display_label"),
	)

	image := rec.get("image_url")
	if image == "" {
		image = firstImage(rec.get("images"))
	}

	return core.Product{
		Id:          id,
		Name:        rec.get("name"),
		Description: description,
		Price:       parsePrice(rec.get("price")),
		Category:    rec.get("category"),
		ImageUrl:    image,
		Brand:       rec.get("brand"),
		ProductUrl:  rec.get("product_url"),
		SourceFile:  fileName,
	}, nil
}

// parsePrice converts a price field to a non-negative float.
// Unparseable or negative values default to 0 rather than failing the row.
func parsePrice(v string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

// firstImage returns the first entry of a pipe-delimited image list.
func firstImage(images string) string {
	first, _, _ := strings.Cut(images, " | ")
	return strings.TrimSpace(first)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
