package telegram

import (
	"fmt"
	"strings"

	"github.com/mcaproject/bsc-analyzer/model"
)

// FormatReport renders an analysis report as a plain-text chat message.
func (s Telegram) FormatReport(r model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n%s\n\n", r.Token.Symbol, r.Token.Name, r.Token.Address)
	fmt.Fprintf(&b, "Score: %.2f/100\nRisk band: %s\n\n", r.Score, r.Band)

	b.WriteString("Factors:\n")
	for _, f := range r.Factors {
		fmt.Fprintf(&b, "%s %s: %s\n", signalMark(f.Signal), f.ID, strings.Join(f.Evidence, "; "))
	}

	b.WriteString("\n")
	if r.Liquidity.Dex != nil {
		fmt.Fprintf(&b, "Liquidity: %s %s\n", *r.Liquidity.Dex, r.Liquidity.Pair)
		if r.Liquidity.LPLockedPct != nil && r.Liquidity.Locker != nil {
			fmt.Fprintf(&b, "LP locked: %.2f%% (%s)\n", *r.Liquidity.LPLockedPct, *r.Liquidity.Locker)
		}
	} else {
		b.WriteString("Liquidity: no Pancake pool found\n")
	}

	if r.Supply.Total != nil {
		fmt.Fprintf(&b, "Total supply: %s\n", *r.Supply.Total)
	}
	if r.Supply.DeadWalletPct != nil {
		fmt.Fprintf(&b, "Burned: %.2f%%\n", *r.Supply.DeadWalletPct)
	}
	if r.Supply.Top10Pct != nil {
		fmt.Fprintf(&b, "Top 10 holders: %.2f%%\n", *r.Supply.Top10Pct)
	}
	if r.Tax.Honeypot {
		b.WriteString("Warning: honeypot-style functions detected\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func signalMark(signal int) string {
	switch {
	case signal > 0:
		return "[+]"
	case signal < 0:
		return "[-]"
	}
	return "[?]"
}
