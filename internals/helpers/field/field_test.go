package field

import (
	"encoding/json"
	"testing"
)

type payload struct {
	Name   Field[string]  `json:"name"`
	Budget Field[float64] `json:"budget"`
	Done   Field[bool]    `json:"done"`
}

func TestFieldAbsent(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Name.Present || p.Budget.Present || p.Done.Present {
		t.Fatalf("absent keys must not be Present: %+v", p)
	}
	if _, ok := p.Name.Get(); ok {
		t.Fatalf("Get on absent field must return false")
	}
	if p.Name.Ptr() != nil {
		t.Fatalf("Ptr on absent field must be nil")
	}
}

func TestFieldNull(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"name":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Name.Present || p.Name.Valid {
		t.Fatalf("null key must be Present but not Valid: %+v", p.Name)
	}
	if !p.Name.IsNull() {
		t.Fatalf("IsNull must be true for explicit null")
	}
}

func TestFieldValue(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"name":"X","budget":500.5,"done":true}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := p.Name.Get(); !ok || v != "X" {
		t.Fatalf("Name: got (%q,%v)", v, ok)
	}
	if v, ok := p.Budget.Get(); !ok || v != 500.5 {
		t.Fatalf("Budget: got (%v,%v)", v, ok)
	}
	if v, ok := p.Done.Get(); !ok || !v {
		t.Fatalf("Done: got (%v,%v)", v, ok)
	}
}

func TestFieldRoundTrip(t *testing.T) {
	p := payload{Name: Set("trip")}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back payload
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := back.Name.Get(); !ok || v != "trip" {
		t.Fatalf("round trip lost value: (%q,%v)", v, ok)
	}
}
