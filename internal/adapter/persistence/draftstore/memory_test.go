package draftstore

import (
	"testing"
	"time"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	s := NewMemoryStore(0)

	if _, ok := s.Get("client-1"); ok {
		t.Fatal("expected miss on empty store")
	}

	draft := entities.DraftOrder{
		Table: "3",
		Items: []entities.DraftItem{{Name: "1/4 kg", Quantity: 1, Subtotal: 12}},
	}
	s.Put("client-1", draft)

	got, ok := s.Get("client-1")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got.Table != "3" || len(got.Items) != 1 {
		t.Fatalf("unexpected draft: %+v", got)
	}

	s.Delete("client-1")
	if _, ok := s.Get("client-1"); ok {
		t.Fatal("expected miss after Delete")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	base := time.Now()
	s.now = func() time.Time { return base }

	s.Put("client-1", entities.DraftOrder{Table: "llevar"})

	s.now = func() time.Time { return base.Add(30 * time.Second) }
	if _, ok := s.Get("client-1"); !ok {
		t.Fatal("expected hit before TTL")
	}

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok := s.Get("client-1"); ok {
		t.Fatal("expected miss after TTL")
	}
	if _, stillThere := s.entries["client-1"]; stillThere {
		t.Fatal("expired entry should be removed")
	}
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	s.Put("client-1", entities.DraftOrder{Table: "1"})
	s.Put("client-1", entities.DraftOrder{Table: "2"})

	got, ok := s.Get("client-1")
	if !ok || got.Table != "2" {
		t.Fatalf("expected latest draft, got ok=%v draft=%+v", ok, got)
	}
}
