// Package renderer turns book data into markdown reports for the terminal.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/kande/shopbook"
)

// Transactions renders a transaction listing, most recent first.
func Transactions(txs []shopbook.Transaction) string {
	if len(txs) == 0 {
		return "No transactions recorded.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"When", "Type", "Description", "Method", "Amount"},
	}
	for _, tx := range txs {
		desc := tx.Description
		if tx.Category != "" {
			desc = fmt.Sprintf("%s (%s)", tx.Description, tx.Category)
		}
		table.Rows = append(table.Rows, []string{
			tx.Timestamp.Format("2006-01-02 15:04"),
			string(tx.Type),
			desc,
			string(tx.Method),
			tx.Amount.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Stock renders the inventory listing with a per-line stock value.
func Stock(items []shopbook.InventoryItem) string {
	if len(items) == 0 {
		return "No stock recorded.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Item", "Quantity", "Unit Price", "Value"},
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []string{
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			item.Price.String(),
			item.Price.MulInt(item.Quantity).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Debts renders the outstanding debts with their running total.
func Debts(debts []shopbook.Debt) string {
	if len(debts) == 0 {
		return "No outstanding debts.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Outstanding Debts")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Customer", "Since", "ID", "Amount"},
	}
	total := shopbook.M(0, shopbook.DefaultCurrency)
	for _, d := range debts {
		total = total.Add(d.Amount)
		table.Rows = append(table.Rows, []string{
			d.CustomerName,
			d.Timestamp.Format("2006-01-02"),
			d.ID,
			d.Amount.String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total outstanding: %s across %d debts.", total, len(debts)))

	return doc.String()
}

// Summary renders the daily metrics, with the business tip when one is
// available.
func Summary(m shopbook.Metrics, tip string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Shop Book - %s", m.Day))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Today's Profit"),
			md.Bold(m.ProfitToday.String()),
		},
		Rows: [][]string{
			{"Today's Sales", m.SalesToday.String()},
			{"Today's Expenses", m.ExpensesToday.String()},
			{"Debts Outstanding", fmt.Sprintf("%s (%d)", m.TotalDebtOutstanding, m.DebtCount)},
		},
	})

	if tip != "" {
		doc.H2("Business Insight")
		doc.PlainText(md.Italic(tip))
	}

	return doc.String()
}
