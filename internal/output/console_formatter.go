package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phtax/tax-calculator/internal/domain"
)

const reportWidth = 52

// ConsoleFormatter renders the plain summary shown after an interactive session.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	var buf bytes.Buffer
	rule := strings.Repeat("#", reportWidth)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)
	writeCentered(&buf, "UNDER "+strings.ToUpper(domain.LegacyCode.Title()))
	writeTaxLine(&buf, result.Legacy)

	writeCentered(&buf, "UNDER "+strings.ToUpper(domain.TrainLaw.Title()))
	if result.TrainApplies {
		writeTaxLine(&buf, result.Train)
	} else {
		writeCentered(&buf, "You're a minimum wage earner!")
		fmt.Fprintln(&buf)
	}

	writeCentered(&buf, "YOU TAKE HOME")
	writeCentered(&buf, fmt.Sprintf("Around %s annually", FormatCurrency(result.TakeHome)))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, rule)
	return buf.Bytes(), nil
}

func writeTaxLine(buf *bytes.Buffer, r domain.RegimeResult) {
	if r.Exempt() {
		writeCentered(buf, "You don't have to pay a tax!")
	} else {
		writeCentered(buf, fmt.Sprintf("Your annual income tax due is %s", FormatCurrency(r.Payable())))
	}
	fmt.Fprintln(buf)
}

func writeCentered(buf *bytes.Buffer, s string) {
	pad := (reportWidth - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(buf, "%s%s\n", strings.Repeat(" ", pad), s)
}
