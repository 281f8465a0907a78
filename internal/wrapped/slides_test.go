package wrapped

import (
	"testing"

	"strava-wrapped/internal/api"
)

func TestBuildSlidesFixedSequence(t *testing.T) {
	wantKinds := []Kind{
		KindIntro, KindConsistency, KindVolume, KindMoments, KindEndurance,
		KindCrew, KindHeatmap, KindTimeOfDay, KindWrapUp,
	}

	// An empty dataset still yields the full sequence; data completeness
	// only affects slide content, never the count or order.
	for _, data := range []*api.Wrapped{nil, {}, {Year: 2024, ActivitiesCount: 312}} {
		slides := BuildSlides(data)
		if len(slides) != len(wantKinds) {
			t.Fatalf("slide count = %d, want %d", len(slides), len(wantKinds))
		}
		for i, s := range slides {
			if s.Kind != wantKinds[i] {
				t.Errorf("slide %d kind = %v, want %v", i, s.Kind, wantKinds[i])
			}
			if s.ID == "" || s.Title == "" || s.Background == "" {
				t.Errorf("slide %d missing content: %+v", i, s)
			}
		}
	}
}

func TestBuildSlidesIntroTitleCarriesYear(t *testing.T) {
	slides := BuildSlides(&api.Wrapped{Year: 2024})
	if got := slides[0].Title; got != "Your Strava Wrapped 2024" {
		t.Errorf("intro title = %q", got)
	}

	slides = BuildSlides(&api.Wrapped{})
	if got := slides[0].Title; got != "Your Strava Wrapped" {
		t.Errorf("intro title without year = %q", got)
	}
}

func TestNotableOf(t *testing.T) {
	if n := NotableOf(nil); n.Present {
		t.Error("NotableOf(nil) should be absent")
	}

	act := &api.WrappedActivity{ID: 7, Name: "Alpine epic", DistanceKm: 120}
	n := NotableOf(act)
	if !n.Present {
		t.Fatal("NotableOf non-nil should be present")
	}
	if n.Activity.ID != 7 || n.Activity.Name != "Alpine epic" {
		t.Errorf("notable activity = %+v", n.Activity)
	}
}
