//go:build unit

package commands

const MaxRedeemAttempts = maxRedeemAttempts

var HashPlaceOrder = hashPlaceOrder
