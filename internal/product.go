package internal

import (
	"fmt"
	"strconv"
)

// Display tables for the processor's hosted checkout page. Unknown tags
// pass through raw so a newly added product cannot break invoicing.
var accountTypeNames = map[string]string{
	"instant":  "Instant",
	"hft":      "HFT",
	"one_step": "1-Step",
	"two_step": "2-Step",
}

var platformNames = map[string]string{
	"mt4": "MT4",
	"mt5": "MT5",
}

// OrderDescription builds the human-readable line shown on the hosted
// invoice page, e.g. "FlashFundX Instant Challenge - $10K (MT4)".
func OrderDescription(accountType, accountSize, platformType string) string {
	name := accountType
	if n, ok := accountTypeNames[accountType]; ok {
		name = n
	}
	platform := platformType
	if p, ok := platformNames[platformType]; ok {
		platform = p
	}
	return fmt.Sprintf("FlashFundX %s Challenge - %s (%s)", name, formatAccountSize(accountSize), platform)
}

func formatAccountSize(size string) string {
	n, err := strconv.ParseInt(size, 10, 64)
	if err != nil {
		return size
	}
	if n >= 1000 && n%1000 == 0 {
		return fmt.Sprintf("$%dK", n/1000)
	}
	return fmt.Sprintf("$%d", n)
}
