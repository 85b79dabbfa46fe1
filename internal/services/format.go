package services

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatBRL renders v as "R$ 1,234.56".
func FormatBRL(v decimal.Decimal) string {
	s := v.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil {
		// beyond uint64, left ungrouped
		return "R$ " + sign + intPart + "." + frac
	}

	return "R$ " + sign + amountPrinter.Sprintf("%d", units) + "." + frac
}
