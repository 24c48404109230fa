package enums

import "fmt"

// Product identifies a fuel product tracked on site.
type Product string

const (
	ProductDiesel   Product = "Diesel"
	ProductAgricola Product = "Diesel Agrícola"
)

var validProducts = []Product{
	ProductDiesel,
	ProductAgricola,
}

// String implements fmt.Stringer.
func (p Product) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Product.
func (p Product) IsValid() bool {
	for _, candidate := range validProducts {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProduct converts raw input into a Product.
func ParseProduct(value string) (Product, error) {
	for _, candidate := range validProducts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product %q", value)
}

// Products returns every known product in declaration order.
func Products() []Product {
	out := make([]Product, len(validProducts))
	copy(out, validProducts)
	return out
}
