package reports

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/quantrail/fundgen/internal/universe"
)

func TestTransactionsNetAmount(t *testing.T) {
	g, fund := newTestGenerator(t, 10)
	tbl := g.Transactions(60, fund)

	if tbl.RowCount() != 60 {
		t.Fatalf("got %d rows, want 60", tbl.RowCount())
	}

	for i := 0; i < tbl.RowCount(); i++ {
		gross := cell(t, tbl, i, "gross_amount")
		fee := cell(t, tbl, i, "fee_amount")
		net := cell(t, tbl, i, "net_amount")
		txnType := cellString(t, tbl, i, "txn_type")

		want := gross.Sub(fee)
		if txnType == "SUBSCRIPTION" || txnType == "SWITCH_IN" {
			want = gross.Add(fee)
		}
		if !net.Equal(want) {
			t.Errorf("row %d (%s): net %s, want %s", i, txnType, net, want)
		}
		if fee.IsNegative() {
			t.Errorf("row %d: negative fee %s", i, fee)
		}
	}
}

func TestTransactionsSettlement(t *testing.T) {
	g, fund := newTestGenerator(t, 11)
	tbl := g.Transactions(20, fund)

	for i := 0; i < tbl.RowCount(); i++ {
		trade := cellTime(t, tbl, i, "trade_date")
		settle := cellTime(t, tbl, i, "settlement_date")
		if !settle.Equal(trade.AddDate(0, 0, 3)) {
			t.Errorf("row %d: settlement %v is not trade date %v + 3 days", i, settle, trade)
		}
	}
}

func TestTransactionsAccountLinkage(t *testing.T) {
	g, fund := newTestGenerator(t, 12)
	u := g.Universe()
	tbl := g.Transactions(50, fund)

	for i := 0; i < tbl.RowCount(); i++ {
		accountID := cellString(t, tbl, i, "account_id")
		account, ok := u.AccountByID(accountID)
		if !ok {
			t.Errorf("row %d references unknown account %s", i, accountID)
			continue
		}
		if got := cellString(t, tbl, i, "shareholder_id"); got != account.ShareholderID {
			t.Errorf("row %d shareholder %s, account says %s", i, got, account.ShareholderID)
		}
		if got := cellString(t, tbl, i, "distributor_id"); got != account.DistributorID {
			t.Errorf("row %d distributor %s, account says %s", i, got, account.DistributorID)
		}
		if got := cellString(t, tbl, i, "representative_id"); got != account.RepresentativeID {
			t.Errorf("row %d representative %s, account says %s", i, got, account.RepresentativeID)
		}
	}
}

func TestCashActivityRunningBalance(t *testing.T) {
	g, fund := newTestGenerator(t, 13)
	tbl := g.CashActivity(40, fund)

	if tbl.RowCount() != 40 {
		t.Fatalf("got %d rows, want 40", tbl.RowCount())
	}

	var prev decimal.Decimal
	for i := 0; i < tbl.RowCount(); i++ {
		amount := cell(t, tbl, i, "amount")
		balance := cell(t, tbl, i, "balance_after")
		if i > 0 {
			if !balance.Sub(prev).Equal(amount) {
				t.Errorf("row %d: balance step %s does not match amount %s",
					i, balance.Sub(prev), amount)
			}
		}
		prev = balance

		activityType := cellString(t, tbl, i, "activity_type")
		outflow := activityType == "REDEMPTION_OUTFLOW" || activityType == "MANAGEMENT_FEE" ||
			activityType == "DIVIDEND_PAYMENT" || activityType == "CUSTODY_FEE"
		if outflow && amount.IsPositive() {
			t.Errorf("row %d: outflow %s has positive amount %s", i, activityType, amount)
		}
		if !outflow && amount.IsNegative() {
			t.Errorf("row %d: inflow %s has negative amount %s", i, activityType, amount)
		}
	}
}

func TestCashActivityDatesOrdered(t *testing.T) {
	g, fund := newTestGenerator(t, 14)
	tbl := g.CashActivity(30, fund)

	for i := 1; i < tbl.RowCount(); i++ {
		prev := cellTime(t, tbl, i-1, "activity_date")
		curr := cellTime(t, tbl, i, "activity_date")
		if curr.Before(prev) {
			t.Errorf("row %d date %v precedes row %d date %v", i, curr, i-1, prev)
		}
	}
}

func TestRegulatoryTransactionsNotional(t *testing.T) {
	g, fund := newTestGenerator(t, 15)
	tbl := g.RegulatoryTransactions(30, fund)

	for i := 0; i < tbl.RowCount(); i++ {
		isin := cellString(t, tbl, i, "isin")
		if len(isin) != 12 {
			t.Errorf("row %d has non-ISIN %q; only listed securities belong here", i, isin)
		}
		notional := cell(t, tbl, i, "notional")
		if !notional.IsPositive() {
			t.Errorf("row %d notional %s not positive", i, notional)
		}

		trade := cellTime(t, tbl, i, "trade_timestamp")
		reported := cellTime(t, tbl, i, "reporting_timestamp")
		if !reported.After(trade) {
			t.Errorf("row %d reported %v not after trade %v", i, reported, trade)
		}
	}
}

func TestRegulatoryTransactionsSingleExecutingLEI(t *testing.T) {
	g, fund := newTestGenerator(t, 16)
	tbl := g.RegulatoryTransactions(25, fund)
	if tbl.Empty() {
		t.Skip("fund holds no listed securities for this seed")
	}

	first := cellString(t, tbl, 0, "executing_entity_lei")
	for i := 1; i < tbl.RowCount(); i++ {
		if got := cellString(t, tbl, i, "executing_entity_lei"); got != first {
			t.Errorf("row %d executing LEI %s differs from %s", i, got, first)
		}
	}
}

func TestRegulatoryTransactionsNoListedSecurities(t *testing.T) {
	g, _ := newTestGenerator(t, 17)
	ghost := universe.Fund{ID: "FND-9999", TypeName: "Hedge Fund"}
	tbl := g.RegulatoryTransactions(10, ghost)
	if !tbl.Empty() {
		t.Errorf("fund without securities produced %d rows", tbl.RowCount())
	}
}
