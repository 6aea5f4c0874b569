// README: Common money value object used across modules. Fares are in CFA francs.
package types

type Money struct {
	Amount   int64
	Currency string
}

// XOF builds a CFA franc amount, the only currency the network bills in.
func XOF(amount int64) Money {
	return Money{Amount: amount, Currency: "XOF"}
}
