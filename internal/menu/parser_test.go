package menu

import "testing"

func TestExtractItemsFromNumberedList(t *testing.T) {
	text := "ម្ហូបថ្ងៃនេះ\n1. Rice\n2. Noodles\n3. Fish Soup"

	items := ExtractItems(text)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %v", len(items), items)
	}
	if items[0] != "Rice" || items[1] != "Noodles" || items[2] != "Fish Soup" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestExtractItemsKhmerNumbering(t *testing.T) {
	text := "១. បាយឆា\n២. គុយទាវ"

	items := ExtractItems(text)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0] != "បាយឆា" || items[1] != "គុយទាវ" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestExtractItemsDropsDuplicates(t *testing.T) {
	text := "1. Rice\n2. Rice\n3. Noodles"

	items := ExtractItems(text)
	if len(items) != 2 {
		t.Fatalf("expected duplicates removed, got %v", items)
	}
	if items[0] != "Rice" || items[1] != "Noodles" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestExtractItemsIgnoresUnnumberedLines(t *testing.T) {
	text := "hello everyone\nlunch today:\n1. Rice\nsee you at noon\n2. Noodles"

	items := ExtractItems(text)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %v", items)
	}
}

func TestIsMenuTextByPrefix(t *testing.T) {
	if !IsMenuText("ម្ហូបថ្ងៃនេះ មានអ្វីខ្លះ") {
		t.Fatalf("prefixed text should be a menu")
	}
}

func TestIsMenuTextByNumberedLines(t *testing.T) {
	if !IsMenuText("1. Rice\n2. Noodles") {
		t.Fatalf("two numbered lines should be a menu")
	}
	if IsMenuText("1. Rice") {
		t.Fatalf("a single numbered line is not a menu")
	}
	if IsMenuText("just chatting about lunch") {
		t.Fatalf("plain chat is not a menu")
	}
	if IsMenuText("") {
		t.Fatalf("empty text is not a menu")
	}
}

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog([]string{"Rice", "Noodles"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateCatalog([]string{"Rice"}); err != ErrNotEnoughItems {
		t.Fatalf("expected ErrNotEnoughItems, got %v", err)
	}
}
