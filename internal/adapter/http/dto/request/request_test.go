package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCashEntryRequest_Resolve(t *testing.T) {
	var r CashEntryRequest
	if err := json.Unmarshal([]byte(`{"receipt_number":999998,"amount":150.5,"description":"entrada"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if amount, err := r.ResolveAmount(); err != nil || amount != 150.5 {
		t.Fatalf("unexpected amount: %v, %v", amount, err)
	}
	if r.ResolveReceiptNumber() != "999998" || *r.ResolveDescription() != "entrada" {
		t.Fatalf("unexpected resolution: %+v", r)
	}

	var legacy CashEntryRequest
	if err := json.Unmarshal([]byte(`{"numero_comprovante":"R-7","valor":3}`), &legacy); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if amount, err := legacy.ResolveAmount(); err != nil || amount != 3 {
		t.Fatalf("unexpected legacy amount: %v, %v", amount, err)
	}
	if legacy.ResolveReceiptNumber() != "R-7" || legacy.ResolveDescription() != nil {
		t.Fatalf("unexpected legacy resolution: %+v", legacy)
	}

	if _, err := (CashEntryRequest{}).ResolveAmount(); !errors.Is(err, ErrMissingAmount) {
		t.Fatalf("expected ErrMissingAmount, got %v", err)
	}

	var zero CashEntryRequest
	if err := json.Unmarshal([]byte(`{"receipt_number":"1","amount":0}`), &zero); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if amount, err := zero.ResolveAmount(); err != nil || amount != 0 {
		t.Fatalf("explicit zero must be accepted: %v, %v", amount, err)
	}
}

func TestCustomerRequest_ToEntity(t *testing.T) {
	var r CustomerRequest
	if err := json.Unmarshal([]byte(`{"nome":"ana","phone":"1","telefone":"2","cidade":"Recife"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	c := r.ToEntity()
	if c.Name != "ana" || c.Phone != "1" || c.City != "Recife" {
		t.Fatalf("unexpected customer: %+v", c)
	}
}

func TestRevenueRequest_ToInput(t *testing.T) {
	var r RevenueRequest
	if err := json.Unmarshal([]byte(`{"lucros":100,"expense":40,"data":"2024-01-01"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in := r.ToInput()
	if in.Profit == nil || *in.Profit != 100 || in.Expense == nil || *in.Expense != 40 {
		t.Fatalf("unexpected amounts: %+v", in)
	}
	if in.Total != nil {
		t.Fatalf("total must stay unset")
	}
	if in.Date == nil || *in.Date != "2024-01-01" {
		t.Fatalf("unexpected date: %v", in.Date)
	}

	empty := RevenueRequest{}.ToInput()
	if empty.Profit != nil || empty.Expense != nil || empty.Date != nil {
		t.Fatalf("expected all defaults: %+v", empty)
	}
}
