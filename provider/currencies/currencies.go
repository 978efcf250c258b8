package currencies

import "github.com/sig-0/uahrates/storage/types"

var (
	UAH types.Currency = "UAH"
	USD types.Currency = "USD"
	EUR types.Currency = "EUR"
)
