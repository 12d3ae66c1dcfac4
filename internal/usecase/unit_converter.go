package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// unitEntry maps a normalized unit to its dimension and its factor relative
// to the dimension's base unit (ml for volume, g for weight, one for count).
type unitEntry struct {
	dimension string
	factor    decimal.Decimal
}

// unitTable holds the fixed, deliberately small conversion table. All
// factors are approximations (a "cup" here is the 240 ml metric cup).
var unitTable = map[string]unitEntry{
	// Volume, base ml
	"cup":   {"volume", decimal.NewFromInt(240)},
	"tbsp":  {"volume", decimal.NewFromInt(15)},
	"tsp":   {"volume", decimal.NewFromInt(5)},
	"liter": {"volume", decimal.NewFromInt(1000)},
	"l":     {"volume", decimal.NewFromInt(1000)},
	"ml":    {"volume", decimal.NewFromInt(1)},

	// Weight, base g
	"kg": {"weight", decimal.NewFromInt(1000)},
	"g":  {"weight", decimal.NewFromInt(1)},
	"lb": {"weight", decimal.NewFromFloat(453.59)},

	// Count units are all equivalent
	"piece":  {"count", decimal.NewFromInt(1)},
	"pieces": {"count", decimal.NewFromInt(1)},
	"pc":     {"count", decimal.NewFromInt(1)},
}

// ConvertUnits converts a quantity between measurement units using the
// fixed table. Unit comparison is case-insensitive; identical units return
// the quantity unchanged with no note. A table-backed conversion returns
// the converted quantity rounded to 2 decimal places plus a note describing
// the approximation. An unknown or cross-dimension pair returns the
// original quantity with a warning note: an unmatched unit should not block
// a candidate from appearing, only warn the caller. Never errors.
func ConvertUnits(quantity decimal.Decimal, fromUnit, toUnit string) (decimal.Decimal, string) {
	from := strings.ToLower(strings.TrimSpace(fromUnit))
	to := strings.ToLower(strings.TrimSpace(toUnit))

	if from == to {
		return quantity, ""
	}

	fromEntry, fromOK := unitTable[from]
	toEntry, toOK := unitTable[to]
	if !fromOK || !toOK || fromEntry.dimension != toEntry.dimension {
		return quantity, fmt.Sprintf("no conversion from %s to %s; quantity left unchanged", fromUnit, toUnit)
	}

	factor := fromEntry.factor.Div(toEntry.factor)
	converted := quantity.Mul(factor).Round(2)
	note := fmt.Sprintf("1 %s ≈ %s %s", from, factor.Round(4).String(), to)

	return converted, note
}
