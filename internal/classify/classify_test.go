package classify

import "testing"

func TestClassify_HealthyOnly(t *testing.T) {
	texts := []string{
		"All systems operating normally, no ongoing events.",
		"Amazon Web Services is operating normally.",
		"No events reported. Everything healthy.",
	}
	for _, txt := range texts {
		if v := Classify(txt); v != Up {
			t.Fatalf("want Up for %q, got %v", txt, v)
		}
	}
}

func TestClassify_IncidentOnly(t *testing.T) {
	texts := []string{
		"We are investigating an ongoing service disruption.",
		"Increased error rates. Degradation in us-east-1.",
		"Major outage affecting multiple services.",
	}
	for _, txt := range texts {
		if v := Classify(txt); v != Down {
			t.Fatalf("want Down for %q, got %v", txt, v)
		}
	}
}

func TestClassify_NoSignalIsUnknown(t *testing.T) {
	texts := []string{
		"",
		"Welcome to the service health dashboard.",
		"<html><body>loading...</body></html>",
	}
	for _, txt := range texts {
		if v := Classify(txt); v != Unknown {
			t.Fatalf("want Unknown for %q, got %v", txt, v)
		}
	}
}

// Contradictory text must fall through to the open-issue pattern, not to a
// majority vote between the two counts.
func TestClassify_ContradictoryFallsThroughToPattern(t *testing.T) {
	// ok hit ("healthy") + bad hit ("outage") + pattern match ("ongoing")
	if v := Classify("Mostly healthy, but one ongoing outage."); v != Down {
		t.Fatalf("want Down via fallback pattern, got %v", v)
	}
	// ok hit + bad hit, no pattern match: unknown even though bad outnumbers ok
	if v := Classify("healthy? outage! incident! disruption!"); v != Unknown {
		t.Fatalf("want Unknown for contradictory text without pattern, got %v", v)
	}
}

func TestClassify_FallbackPatternAlone(t *testing.T) {
	// zero keyword hits either way, but the pattern flags an open problem
	if v := Classify("There are open  issues on the dashboard."); v != Down {
		t.Fatalf("want Down via open-issues pattern, got %v", v)
	}
	if v := Classify("Ongoing maintenance window."); v != Down {
		t.Fatalf("want Down via ongoing pattern, got %v", v)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if v := Classify("OPERATING NORMALLY"); v != Up {
		t.Fatalf("want Up, got %v", v)
	}
	if v := Classify("INVESTIGATING"); v != Down {
		t.Fatalf("want Down, got %v", v)
	}
}

func TestVerdict_String(t *testing.T) {
	if Up.String() != "up" || Down.String() != "down" || Unknown.String() != "unknown" {
		t.Fatalf("unexpected verdict strings: %v %v %v", Up, Down, Unknown)
	}
}
