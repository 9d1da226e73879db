package model

import (
	"testing"
)

func TestDraftUpdate(t *testing.T) {
	tests := map[string]struct {
		draft        Draft
		categorySet  bool
		wantMaxBid   *int
		wantPriority *int
		wantNotes    *string
		wantTracked  bool
	}{
		"all empty": {
			draft: Draft{},
		},
		"max bid only": {
			draft:       Draft{MaxBid: "15"},
			wantMaxBid:  intPtr(15),
			wantTracked: true,
		},
		"max bid with spaces": {
			draft:       Draft{MaxBid: " 42 "},
			wantMaxBid:  intPtr(42),
			wantTracked: true,
		},
		"unparsable max bid": {
			draft: Draft{MaxBid: "abc"},
		},
		"zero max bid is unset": {
			draft: Draft{MaxBid: "0"},
		},
		"negative max bid is unset": {
			draft: Draft{MaxBid: "-3"},
		},
		"priority only": {
			draft:        Draft{Priority: 4},
			wantPriority: intPtr(4),
			wantTracked:  true,
		},
		"notes trimmed": {
			draft:       Draft{Notes: "  occhio alla clausola  "},
			wantNotes:   strPtr("occhio alla clausola"),
			wantTracked: true,
		},
		"whitespace notes are unset": {
			draft: Draft{Notes: "   "},
		},
		"category keeps tracked": {
			draft:       Draft{},
			categorySet: true,
			wantTracked: true,
		},
		"everything": {
			draft:        Draft{MaxBid: "30", Priority: 5, Notes: "top target"},
			wantMaxBid:   intPtr(30),
			wantPriority: intPtr(5),
			wantNotes:    strPtr("top target"),
			wantTracked:  true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			u := tc.draft.Update(tc.categorySet)

			checkIntPtr(t, "maxBid", u.MaxBid, tc.wantMaxBid)
			checkIntPtr(t, "priority", u.Priority, tc.wantPriority)
			checkStrPtr(t, "notes", u.Notes, tc.wantNotes)
			if u.Tracked != tc.wantTracked {
				t.Errorf("tracked = %v, wanted %v", u.Tracked, tc.wantTracked)
			}
		})
	}
}

func TestDraftUpdateIdempotent(t *testing.T) {
	d := Draft{MaxBid: "15", Priority: 2, Notes: "idem", State: DraftDirty}

	first := d.Update(false)
	second := d.Update(false)

	if *first.MaxBid != *second.MaxBid || *first.Priority != *second.Priority ||
		*first.Notes != *second.Notes || first.Tracked != second.Tracked {
		t.Errorf("updates differ: %+v vs %+v", first, second)
	}
}

func TestFromStrategy(t *testing.T) {
	tests := map[string]struct {
		strategy *Strategy
		want     Draft
	}{
		"nil strategy": {
			strategy: nil,
			want:     Draft{},
		},
		"empty strategy": {
			strategy: &Strategy{},
			want:     Draft{},
		},
		"full strategy": {
			strategy: &Strategy{MaxBid: intPtr(25), Priority: intPtr(3), Notes: strPtr("nota")},
			want:     Draft{MaxBid: "25", Priority: 3, Notes: "nota"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := FromStrategy(tc.strategy)
			if got != tc.want {
				t.Errorf("FromStrategy = %+v, wanted %+v", got, tc.want)
			}
			if got.State != DraftClean {
				t.Errorf("seeded draft should be clean, was %v", got.State)
			}
		})
	}
}

func TestDraftHasAnnotation(t *testing.T) {
	if (Draft{}).HasAnnotation() {
		t.Errorf("empty draft should have no annotation")
	}
	if !(Draft{MaxBid: "7"}).HasAnnotation() {
		t.Errorf("draft with max bid should have an annotation")
	}
	if !(Draft{Priority: 1}).HasAnnotation() {
		t.Errorf("draft with priority should have an annotation")
	}
	if !(Draft{Notes: "x"}).HasAnnotation() {
		t.Errorf("draft with notes should have an annotation")
	}
	if (Draft{MaxBid: "  ", Notes: " "}).HasAnnotation() {
		t.Errorf("whitespace-only draft should have no annotation")
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func checkIntPtr(t *testing.T, field string, got, want *int) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Errorf("%s = %v, wanted %v", field, got, want)
		return
	}
	if got != nil && *got != *want {
		t.Errorf("%s = %d, wanted %d", field, *got, *want)
	}
}

func checkStrPtr(t *testing.T, field string, got, want *string) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Errorf("%s = %v, wanted %v", field, got, want)
		return
	}
	if got != nil && *got != *want {
		t.Errorf("%s = %q, wanted %q", field, *got, *want)
	}
}
