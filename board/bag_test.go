package board

import "testing"

func TestSevenBagNextConsumesInOrder(t *testing.T) {
	bag := NewSevenBag(AllPieces[:])
	for i, want := range AllPieces {
		got, ok := bag.Next()
		if !ok || got != want {
			t.Fatalf("piece %d: got (%v,%v) want %v", i, got, ok, want)
		}
	}
	if _, ok := bag.Next(); ok {
		t.Error("expected bag to be exhausted")
	}
}

func TestSevenBagPeekDoesNotConsume(t *testing.T) {
	bag := NewSevenBag(AllPieces[:])
	first, _ := bag.Peek()
	second, _ := bag.Peek()
	if first != second || first != I {
		t.Errorf("peek should be idempotent: got %v then %v", first, second)
	}
	if len(bag.Remaining()) != len(AllPieces) {
		t.Errorf("peek should not shrink remaining, got %d", len(bag.Remaining()))
	}
}

func TestSevenBagRemainingShrinksAfterNext(t *testing.T) {
	bag := NewSevenBag(AllPieces[:])
	bag.Next()
	if len(bag.Remaining()) != len(AllPieces)-1 {
		t.Errorf("expected %d remaining, got %d", len(AllPieces)-1, len(bag.Remaining()))
	}
	if bag.Remaining()[0] != O {
		t.Errorf("expected O next, got %v", bag.Remaining()[0])
	}
}
