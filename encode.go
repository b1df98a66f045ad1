package journal

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Persisted keys of the flat key/value layout.
const (
	keyTrades          = "trades"
	keyDreams          = "dreams"
	keyAccountBalance  = "accountBalance"
	keyStartingBalance = "startingBalance"
)

func encodeTrades(trades []TradeRecord) ([]byte, error) {
	if trades == nil {
		trades = []TradeRecord{}
	}
	return json.Marshal(trades)
}

func decodeTrades(data []byte) ([]TradeRecord, error) {
	var trades []TradeRecord
	if err := json.Unmarshal(data, &trades); err != nil {
		return nil, fmt.Errorf("could not decode trade list: %w", err)
	}
	return trades, nil
}

func encodeDreams(dreams []DreamRecord) ([]byte, error) {
	if dreams == nil {
		dreams = []DreamRecord{}
	}
	return json.Marshal(dreams)
}

func decodeDreams(data []byte) ([]DreamRecord, error) {
	var dreams []DreamRecord
	if err := json.Unmarshal(data, &dreams); err != nil {
		return nil, fmt.Errorf("could not decode dream list: %w", err)
	}
	return dreams, nil
}

// Balances are persisted as plain decimal strings.
func encodeBalance(d decimal.Decimal) []byte { return []byte(d.String()) }

func decodeBalance(data []byte) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not decode balance %q: %w", data, err)
	}
	return d, nil
}
