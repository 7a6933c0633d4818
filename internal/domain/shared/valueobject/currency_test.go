package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyIsValid(t *testing.T) {
	for _, c := range []Currency{NOK, SEK, DKK, EUR, USD, GBP} {
		assert.True(t, c.IsValid(), "currency %s", c)
	}
	assert.False(t, Currency("").IsValid())
	assert.False(t, Currency("BTC").IsValid())
}

func TestDefaultCurrencyIsNOK(t *testing.T) {
	assert.Equal(t, NOK, DefaultCurrency)
	assert.Equal(t, "NOK", DefaultCurrency.String())
}
