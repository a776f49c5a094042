package exceptions

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReconcilePrunesMissingStrings(t *testing.T) {
	stored := Store{
		"browser/file.ftl:old-message": {"tokken"},
		"browser/file.ftl:kept":        {"tokken"},
	}
	currentIDs := map[string]bool{"browser/file.ftl:kept": true}
	stillNeeded := map[string]bool{
		"browser/file.ftl:old-message": true,
		"browser/file.ftl:kept":        true,
	}

	got := Reconcile(stored, nil, currentIDs, stillNeeded)

	want := Store{"browser/file.ftl:kept": {"tokken"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reconcile mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcilePrunesHealedEntries(t *testing.T) {
	// The only excused token no longer fails the oracle, so the entry was
	// not needed this run and must disappear entirely.
	stored := Store{"toolkit/about.ftl:version": {"Nightly"}}
	currentIDs := map[string]bool{"toolkit/about.ftl:version": true}
	stillNeeded := map[string]bool{}

	got := Reconcile(stored, nil, currentIDs, stillNeeded)

	if len(got) != 0 {
		t.Errorf("expected healed entry to be pruned, got %v", got)
	}
}

func TestReconcileOverwritesChangedEntries(t *testing.T) {
	stored := Store{"browser/menu.ftl:item": {"vecchio", "tokken"}}
	live := map[string][]string{"browser/menu.ftl:item": {"tokken"}}
	currentIDs := map[string]bool{"browser/menu.ftl:item": true}
	stillNeeded := map[string]bool{"browser/menu.ftl:item": true}

	got := Reconcile(stored, live, currentIDs, stillNeeded)

	want := Store{"browser/menu.ftl:item": {"tokken"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reconcile mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	stored := Store{
		"a.ftl:one": {"primo"},
		"b.ftl:two": {"secondo", "terzo"},
	}
	live := map[string][]string{"b.ftl:two": {"secondo"}}
	currentIDs := map[string]bool{"a.ftl:one": true, "b.ftl:two": true}
	stillNeeded := map[string]bool{"a.ftl:one": true, "b.ftl:two": true}

	once := Reconcile(stored, live, currentIDs, stillNeeded)
	twice := Reconcile(once, live, currentIDs, stillNeeded)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second reconcile changed the result (-once +twice):\n%s", diff)
	}
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	stored := Store{"a.ftl:one": {"primo"}}
	live := map[string][]string{"a.ftl:one": {"altro"}}
	currentIDs := map[string]bool{"a.ftl:one": true}
	stillNeeded := map[string]bool{"a.ftl:one": true}

	got := Reconcile(stored, live, currentIDs, stillNeeded)
	got["a.ftl:one"][0] = "mutato"

	if stored["a.ftl:one"][0] != "primo" {
		t.Error("Reconcile shared the stored slice")
	}
	if live["a.ftl:one"][0] != "altro" {
		t.Error("Reconcile shared the live slice")
	}
}
