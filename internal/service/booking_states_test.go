package service

import (
	"testing"

	"vehiclebooking/internal/db"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{db.StatusPending, db.StatusConfirmed},
		{db.StatusPending, db.StatusCancelled},
		{db.StatusConfirmed, db.StatusCompleted},
		{db.StatusConfirmed, db.StatusCancelled},
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Fatalf("expected %s -> %s allowed", pair[0], pair[1])
		}
	}

	denied := [][2]string{
		{db.StatusCompleted, db.StatusCancelled},
		{db.StatusCancelled, db.StatusPending},
		{db.StatusCancelled, db.StatusCancelled},
		{db.StatusPending, db.StatusCompleted},
		{"bogus", db.StatusCancelled},
	}
	for _, pair := range denied {
		if CanTransition(pair[0], pair[1]) {
			t.Fatalf("expected %s -> %s denied", pair[0], pair[1])
		}
	}
}
