package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDateTimeUnmarshalShortDate(t *testing.T) {
	var payload struct {
		StartDate DateTime  `json:"start_date"`
		EndDate   *DateTime `json:"end_date"`
	}
	if err := json.Unmarshal([]byte(`{"start_date":"2024-03-01","end_date":"2024-03-05T10:00:00Z"}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.StartDate.Format(DateLayout) != "2024-03-01" {
		t.Fatalf("start date want 2024-03-01 got %s", payload.StartDate.Format(DateLayout))
	}
	if payload.EndDate == nil || payload.EndDate.Hour() != 10 {
		t.Fatalf("end date not parsed: %+v", payload.EndDate)
	}
}

func TestDateTimeRejectsGarbage(t *testing.T) {
	var d DateTime
	if err := json.Unmarshal([]byte(`"next tuesday"`), &d); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDateTimeZeroMarshalsNull(t *testing.T) {
	raw, err := json.Marshal(DateTime{})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("zero datetime want null got %s", raw)
	}
}

func TestMoneyJSON(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"12.345"`), &m); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if m.String() != "12.35" {
		t.Fatalf("money want 12.35 got %s", m.String())
	}
	if err := json.Unmarshal([]byte(`7.1`), &m); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	raw, _ := json.Marshal(m)
	if string(raw) != "7.10" {
		t.Fatalf("money json want 7.10 got %s", raw)
	}
	if !NewMoneyFromDecimal(decimal.NewFromInt(3)).Equal(decimal.NewFromInt(3)) {
		t.Fatalf("money from decimal mismatch")
	}
}

func TestAnnouncementLiveAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	end := NewDateTime(now.Add(-time.Hour))
	cases := []struct {
		name string
		a    Announcement
		want bool
	}{
		{name: "inactive", a: Announcement{IsActive: false, StartDate: NewDateTime(now.Add(-time.Hour))}, want: false},
		{name: "not started", a: Announcement{IsActive: true, StartDate: NewDateTime(now.Add(time.Hour))}, want: false},
		{name: "expired", a: Announcement{IsActive: true, StartDate: NewDateTime(now.Add(-2 * time.Hour)), EndDate: &end}, want: false},
		{name: "open ended", a: Announcement{IsActive: true, StartDate: NewDateTime(now.Add(-time.Hour))}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.LiveAt(now); got != tc.want {
				t.Fatalf("live want %v got %v", tc.want, got)
			}
		})
	}
}
