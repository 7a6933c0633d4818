package valueobject

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	NOK Currency = "NOK" // Norwegian Krone (default)
	SEK Currency = "SEK" // Swedish Krona
	DKK Currency = "DKK" // Danish Krone
	EUR Currency = "EUR" // Euro
	USD Currency = "USD" // US Dollar
	GBP Currency = "GBP" // British Pound
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = NOK

// IsValid reports whether the code is one of the supported currencies
func (c Currency) IsValid() bool {
	switch c {
	case NOK, SEK, DKK, EUR, USD, GBP:
		return true
	}
	return false
}

// String returns the currency code as a string
func (c Currency) String() string {
	return string(c)
}
