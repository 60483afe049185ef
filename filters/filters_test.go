package filters

import (
	"testing"
	"time"

	"taskboard/models"
)

func collector() (*Filters, chan models.QueryParams) {
	ch := make(chan models.QueryParams, 16)
	f := New(func(p models.QueryParams) { ch <- p })
	return f, ch
}

func expectNone(t *testing.T, ch chan models.QueryParams, within time.Duration) {
	t.Helper()
	select {
	case p := <-ch:
		t.Fatalf("unexpected propagation: %+v", p)
	case <-time.After(within):
	}
}

func expectOne(t *testing.T, ch chan models.QueryParams, within time.Duration) models.QueryParams {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(within):
		t.Fatal("expected a propagation")
		return models.QueryParams{}
	}
}

func TestRapidKeystrokesCoalesce(t *testing.T) {
	f, ch := collector()

	for _, q := range []string{"b", "bu", "buy", "buy ", "buy m"} {
		f.SetSearch(q)
		time.Sleep(20 * time.Millisecond)
	}

	p := expectOne(t, ch, time.Second)
	if p.Search != "buy m" {
		t.Fatalf("expected final keystroke value, got %q", p.Search)
	}
	// Exactly one propagation for the whole burst.
	expectNone(t, ch, 700*time.Millisecond)
}

func TestSingleKeystrokePropagatesOnce(t *testing.T) {
	f, ch := collector()

	f.SetSearch("report")
	expectNone(t, ch, 300*time.Millisecond)

	p := expectOne(t, ch, time.Second)
	if p.Search != "report" {
		t.Fatalf("expected %q, got %q", "report", p.Search)
	}
	expectNone(t, ch, 700*time.Millisecond)
}

func TestStatusAndPriorityPropagateImmediately(t *testing.T) {
	f, ch := collector()

	f.SetStatus(models.StatusPending)
	p := expectOne(t, ch, 100*time.Millisecond)
	if p.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %+v", p)
	}

	f.SetPriority(models.PriorityHigh)
	p = expectOne(t, ch, 100*time.Millisecond)
	if p.Priority != models.PriorityHigh {
		t.Fatalf("expected high priority, got %+v", p)
	}
}

func TestAllPlaceholderIsOmittedFromQuery(t *testing.T) {
	f, _ := collector()
	if q := f.Query(); q.Status != "" || q.Priority != "" || q.Search != "" {
		t.Fatalf("expected empty default query, got %+v", q)
	}
	f.SetStatus(models.StatusCompleted)
	f.SetStatus(All)
	if q := f.Query(); q.Status != "" {
		t.Fatalf("expected 'all' to be dropped, got %q", q.Status)
	}
}

func TestResetRestoresDefaultsSynchronously(t *testing.T) {
	f, ch := collector()

	f.SetStatus(models.StatusCompleted)
	f.SetPriority(models.PriorityLow)
	<-ch
	<-ch
	f.SetSearch("pending search")

	f.Reset()
	p := expectOne(t, ch, 100*time.Millisecond)
	if p.Search != "" || p.Status != "" || p.Priority != "" {
		t.Fatalf("expected cleared query, got %+v", p)
	}
	if f.Search() != "" || f.Status() != All || f.Priority() != All {
		t.Fatal("expected raw inputs back at defaults")
	}

	// The pending debounce timer must not fire with the stale search.
	expectNone(t, ch, 700*time.Millisecond)
}

func TestDebouncedValueFeedsQuery(t *testing.T) {
	f, ch := collector()

	f.SetSearch("invoices")
	if q := f.Query(); q.Search != "" {
		t.Fatalf("search must not reach the query before the debounce, got %q", q.Search)
	}
	<-ch
	if q := f.Query(); q.Search != "invoices" {
		t.Fatalf("expected propagated search in query, got %q", q.Search)
	}
}

func TestCreateDialogFlag(t *testing.T) {
	f, ch := collector()
	f.SetCreateDialogOpen(true)
	if !f.CreateDialogOpen() {
		t.Fatal("expected dialog flag set")
	}
	// Pure UI state: toggling it never triggers a query.
	expectNone(t, ch, 100*time.Millisecond)
}
