package shopbook

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("record", "debt")
	w.Append("amount", 50)
	w.Optional("category", "")        // zero value, omitted
	w.Optional("method", Cash)        // non-zero, kept
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	want := `{"record":"debt","amount":50,"method":"CASH"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}

func TestJsonObjectWriter_Embed(t *testing.T) {
	var w jsonObjectWriter
	w.Append("record", "transaction")
	w.Embed([]byte(`{"id":"1","type":"SALE"}`))
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	want := `{"record":"transaction","id":"1","type":"SALE"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
