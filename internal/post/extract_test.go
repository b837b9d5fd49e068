package post

import "testing"

func TestExtractProducts(t *testing.T) {
	desc := "Chisel Set: https://amazon.com/x\nSander - https://lowes.com/y"

	products := ExtractProducts(desc, DefaultProductHosts)
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].Name != "Chisel Set" || products[0].URL != "https://amazon.com/x" {
		t.Errorf("product 0 = %+v", products[0])
	}
	if products[1].Name != "Sander" || products[1].URL != "https://lowes.com/y" {
		t.Errorf("product 1 = %+v", products[1])
	}
}

func TestExtractProducts_AllowList(t *testing.T) {
	desc := "Chisel Set: https://amazon.com/x\nMystery Tool: https://sketchy.example/z"

	strict := ExtractProducts(desc, DefaultProductHosts)
	if len(strict) != 1 {
		t.Fatalf("strict mode: got %d products, want 1", len(strict))
	}
	if strict[0].Name != "Chisel Set" {
		t.Errorf("strict mode kept %+v", strict[0])
	}

	// Loose mode: any http(s) URL qualifies.
	loose := ExtractProducts(desc, nil)
	if len(loose) != 2 {
		t.Errorf("loose mode: got %d products, want 2", len(loose))
	}
}

func TestExtractProducts_DuplicatesAndOrder(t *testing.T) {
	desc := "Glue: https://amazon.com/a\nGlue: https://amazon.com/b"

	products := ExtractProducts(desc, DefaultProductHosts)
	if len(products) != 2 {
		t.Fatalf("duplicate names must not be deduplicated, got %d", len(products))
	}
	if products[0].URL != "https://amazon.com/a" || products[1].URL != "https://amazon.com/b" {
		t.Errorf("order of appearance not preserved: %+v", products)
	}
}

func TestExtractProducts_SubdomainAllowed(t *testing.T) {
	desc := "Clamps: https://www.amazon.com/clamps"

	products := ExtractProducts(desc, DefaultProductHosts)
	if len(products) != 1 {
		t.Fatalf("www subdomain should match allow-list, got %d products", len(products))
	}
}

func TestExtractChapters(t *testing.T) {
	desc := "Intro text\n00:30 Marking out\n1:02:15 Glue up\nnot a chapter"

	chapters := ExtractChapters(desc)
	if len(chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(chapters))
	}
	if chapters[0].Timestamp != "00:30" || chapters[0].Title != "Marking out" {
		t.Errorf("chapter 0 = %+v", chapters[0])
	}
	if chapters[1].Timestamp != "1:02:15" || chapters[1].Title != "Glue up" {
		t.Errorf("chapter 1 = %+v", chapters[1])
	}
}

func TestExtractChapters_NoValidation(t *testing.T) {
	// Out-of-range and non-monotonic timestamps are accepted as-is.
	desc := "99:99 Way out of range\n00:10 Back in time"

	chapters := ExtractChapters(desc)
	if len(chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(chapters))
	}
	if chapters[0].Timestamp != "99:99" {
		t.Errorf("chapter 0 = %+v", chapters[0])
	}
}
