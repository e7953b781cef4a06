package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptsPaymentMethod(t *testing.T) {
	cfg := &Config{AcceptedPaymentMethods: splitList("Bitcoin, ethereum ,")}

	assert.Equal(t, []string{"bitcoin", "ethereum"}, cfg.AcceptedPaymentMethods)
	assert.True(t, cfg.AcceptsPaymentMethod("bitcoin"))
	assert.True(t, cfg.AcceptsPaymentMethod("Ethereum"))
	assert.False(t, cfg.AcceptsPaymentMethod("visa"))
	assert.False(t, cfg.AcceptsPaymentMethod(""))
}

func TestSplitListEmpty(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , , "))
}
