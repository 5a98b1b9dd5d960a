package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(Conflict("dates overlap")); got != KindConflict {
		t.Fatalf("expected conflict kind, got %s", got)
	}
	wrapped := fmt.Errorf("creating booking: %w", NotFound("vehicle 9 not found"))
	if got := KindOf(wrapped); got != KindNotFound {
		t.Fatalf("expected not_found through wrapping, got %s", got)
	}
	if got := KindOf(fmt.Errorf("plain failure")); got != KindInternal {
		t.Fatalf("expected internal for unclassified error, got %s", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("end date before start date"), http.StatusBadRequest},
		{Conflict("vehicle already booked"), http.StatusConflict},
		{Authorization("not your booking"), http.StatusForbidden},
		{NotFound("no such vehicle"), http.StatusNotFound},
		{Integrity("vehicle has bookings"), http.StatusConflict},
		{InvalidState("booking already cancelled"), http.StatusUnprocessableEntity},
		{fmt.Errorf("db down"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
