package types

import (
	"encoding/json"
	"testing"
)

func TestPaginatedDecodesEnvelope(t *testing.T) {
	raw := `{"count":2,"next":"http://x/api/products/?page=2","previous":null,"results":[{"id":1,"name":"Pommes"},{"id":2,"name":"Poires"}]}`

	var page Paginated[Category]
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Count != 2 || len(page.Results) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Next == "" || page.Previous != "" {
		t.Fatalf("cursor fields mishandled: %+v", page)
	}
	if page.Results[1].Name != "Poires" {
		t.Fatalf("unexpected results: %+v", page.Results)
	}
}

func TestPaginatedDecodesBareArray(t *testing.T) {
	raw := `[{"id":5,"name":"Paniers"}]`

	var page Paginated[Category]
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Count != 1 || len(page.Results) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Results[0].ID != 5 {
		t.Fatalf("unexpected results: %+v", page.Results)
	}
}
