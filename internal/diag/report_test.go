package diag

import "testing"

func TestAggregateFiltersToTarget(t *testing.T) {
	diags := []Diagnostic{
		New("basedpyright", SevError, "pkg/app.py", 10, 3, "reportArgumentType", "bad argument"),
		New("basedpyright", SevError, "site-packages/requests/api.py", 4, 1, "reportMissingTypeStubs", "stub missing"),
		New("basedpyright", SevWarning, "pkg/other.py", 7, 1, "reportUnusedVariable", "unused"),
	}
	r := Aggregate("basedpyright", "pkg/app.py", diags, 0)
	if r.Status != StatusFail {
		t.Fatalf("expected fail, got %s", r.Status)
	}
	if len(r.Groups) != 1 {
		t.Fatalf("dependency diagnostics must be excluded before grouping, got %d groups", len(r.Groups))
	}
	if r.Groups[0].Rule != "reportArgumentType" {
		t.Fatalf("unexpected surviving group %+v", r.Groups[0])
	}
}

func TestFilterIdempotent(t *testing.T) {
	b := NewBag(16)
	b.Add(New("ruff", SevError, "a.py", 1, 1, "E501", "line too long"))
	b.Add(New("ruff", SevError, "b.py", 2, 1, "E501", "line too long"))
	b.FilterPath("a.py")
	once := append([]Diagnostic(nil), b.Items()...)
	b.FilterPath("a.py")
	if len(b.Items()) != len(once) {
		t.Fatalf("filtering an already-filtered set changed it: %d vs %d", len(b.Items()), len(once))
	}
	for i := range once {
		if once[i] != b.Items()[i] {
			t.Fatalf("filter not idempotent at %d", i)
		}
	}
}

func TestAggregateEmptyIsSilentPass(t *testing.T) {
	r := Aggregate("ruff", "a.py", nil, 0)
	if r.Status != StatusPass || len(r.Groups) != 0 {
		t.Fatalf("empty filtered set must pass silently, got %+v", r)
	}
}

func TestAggregateKeepsFixedCountOnPass(t *testing.T) {
	r := Aggregate("ruff", "a.py", nil, 2)
	if r.Status != StatusPass || r.Fixed != 2 {
		t.Fatalf("auto-fixed count must survive aggregation, got %+v", r)
	}
}

func TestTimeoutReportCarriesNoGroups(t *testing.T) {
	r := TimeoutReport("tsc", "app.ts", "tsc exceeded 30s")
	if r.Status != StatusTimeout {
		t.Fatalf("expected timed out, got %s", r.Status)
	}
	if len(r.Groups) != 0 {
		t.Fatalf("partial output must not be aggregated")
	}
	if r.Status.String() != "timed out" {
		t.Fatalf("unexpected status label %q", r.Status.String())
	}
}

func TestReportCounts(t *testing.T) {
	diags := []Diagnostic{
		New("eslint", SevError, "app.ts", 1, 1, "no-undef", "'x' is not defined"),
		New("eslint", SevError, "app.ts", 2, 1, "no-undef", "'x' is not defined"),
		New("eslint", SevWarning, "app.ts", 3, 1, "eqeqeq", "Expected '==='"),
	}
	r := Aggregate("eslint", "app.ts", diags, 0)
	if r.ErrorCount() != 2 || r.WarningCount() != 1 {
		t.Fatalf("bad counts: errors=%d warnings=%d", r.ErrorCount(), r.WarningCount())
	}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New("ruff", SevError, "a.py", 1, 1, "E1", "m")) {
		t.Fatalf("first add must succeed")
	}
	if !b.Add(New("ruff", SevError, "a.py", 2, 1, "E1", "m")) {
		t.Fatalf("second add must succeed")
	}
	if b.Add(New("ruff", SevError, "a.py", 3, 1, "E1", "m")) {
		t.Fatalf("add past cap must be rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(8)
	b.Add(New("ruff", SevWarning, "b.py", 2, 1, "W1", "m"))
	b.Add(New("ruff", SevError, "a.py", 9, 1, "E2", "m"))
	b.Add(New("ruff", SevError, "a.py", 9, 1, "E2", "m"))
	b.Add(New("ruff", SevError, "a.py", 3, 2, "E1", "m"))
	b.Dedup()
	b.Sort()
	if b.Len() != 3 {
		t.Fatalf("expected dedup to drop exact repeat, got %d", b.Len())
	}
	items := b.Items()
	if items[0].Path != "a.py" || items[0].Line != 3 {
		t.Fatalf("unexpected sort order: %+v", items)
	}
	if items[2].Path != "b.py" {
		t.Fatalf("unexpected sort order: %+v", items)
	}
}
