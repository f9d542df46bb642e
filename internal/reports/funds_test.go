package reports

import (
	"testing"
)

func TestFundCharacteristicsAllFunds(t *testing.T) {
	g, _ := newTestGenerator(t, 50)
	u := g.Universe()

	tbl := g.FundCharacteristics("")
	if tbl.RowCount() != len(u.Funds) {
		t.Fatalf("got %d rows, want one per fund (%d)", tbl.RowCount(), len(u.Funds))
	}
}

func TestFundCharacteristicsFiltered(t *testing.T) {
	g, _ := newTestGenerator(t, 51)
	u := g.Universe()

	tbl := g.FundCharacteristics("Hedge Fund")
	if tbl.RowCount() != len(u.FundsOfType("Hedge Fund")) {
		t.Fatalf("filtered table has %d rows, want %d",
			tbl.RowCount(), len(u.FundsOfType("Hedge Fund")))
	}
	for i := 0; i < tbl.RowCount(); i++ {
		if got := cellString(t, tbl, i, "fund_type"); got != "Hedge Fund" {
			t.Errorf("row %d fund type %q", i, got)
		}
	}
}

func TestCorporateActionsDates(t *testing.T) {
	g, fund := newTestGenerator(t, 52)
	tbl := g.CorporateActions(30, fund)

	for i := 0; i < tbl.RowCount(); i++ {
		announce := cellTime(t, tbl, i, "announcement_date")
		ex := cellTime(t, tbl, i, "ex_date")
		record := cellTime(t, tbl, i, "record_date")
		pay := cellTime(t, tbl, i, "pay_date")

		if !announce.Before(ex) {
			t.Errorf("row %d: announcement %v not before ex date %v", i, announce, ex)
		}
		if !record.After(ex) {
			t.Errorf("row %d: record date %v not after ex date %v", i, record, ex)
		}
		if !pay.After(ex) {
			t.Errorf("row %d: pay date %v not after ex date %v", i, pay, ex)
		}
	}
}

func TestCorporateActionsFields(t *testing.T) {
	g, fund := newTestGenerator(t, 53)
	tbl := g.CorporateActions(40, fund)

	ratioIdx := tbl.ColumnIndex("ratio")
	amountIdx := tbl.ColumnIndex("amount")
	for i := 0; i < tbl.RowCount(); i++ {
		actionType := cellString(t, tbl, i, "action_type")
		ratio := tbl.Rows[i][ratioIdx]
		amount := tbl.Rows[i][amountIdx]

		switch actionType {
		case "CASH_DIVIDEND":
			if amount == nil {
				t.Errorf("row %d: dividend without amount", i)
			}
			if ratio != nil {
				t.Errorf("row %d: dividend with ratio %v", i, ratio)
			}
		case "STOCK_SPLIT", "RIGHTS_ISSUE":
			if ratio == nil {
				t.Errorf("row %d: %s without ratio", i, actionType)
			}
			if amount != nil {
				t.Errorf("row %d: %s with amount %v", i, actionType, amount)
			}
		case "MERGER", "NAME_CHANGE":
			if ratio != nil || amount != nil {
				t.Errorf("row %d: %s carries ratio/amount", i, actionType)
			}
		default:
			t.Errorf("row %d: unexpected action type %q", i, actionType)
		}
	}
}
