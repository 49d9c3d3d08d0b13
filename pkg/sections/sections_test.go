package sections

import "testing"

// page lays out six 20-line sections back to back.
func page() Spans {
	spans := Spans{}
	for i, id := range IDs() {
		spans[id] = Span{Start: i * 20, End: (i + 1) * 20}
	}
	return spans
}

func TestIDsOrder(t *testing.T) {
	want := []string{"home", "about", "experience", "projects", "skills", "contact"}
	got := IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBandRegion(t *testing.T) {
	tests := []struct {
		band           Band
		offset, height int
		want           Span
	}{
		{DefaultBand, 0, 30, Span{6, 7}},
		{DefaultBand, 40, 30, Span{46, 47}},
		{DefaultBand, 0, 10, Span{2, 3}},
		{Band{0, 0}, 5, 10, Span{5, 15}},
		{Band{0.5, 0.25}, 0, 40, Span{20, 30}},
	}
	for _, tt := range tests {
		if got := tt.band.Region(tt.offset, tt.height); got != tt.want {
			t.Errorf("%+v.Region(%d,%d) = %+v, want %+v", tt.band, tt.offset, tt.height, got, tt.want)
		}
	}
}

func TestBandReach(t *testing.T) {
	tests := []struct {
		band   Band
		height int
		want   int
	}{
		{DefaultBand, 18, 15},
		{DefaultBand, 30, 24},
		{DefaultBand, 0, 0},
		{Band{0, 0}, 10, 10},
		{Band{0.5, 0.25}, 41, 21},
	}
	for _, tt := range tests {
		if got := tt.band.Reach(tt.height); got != tt.want {
			t.Errorf("%+v.Reach(%d) = %d, want %d", tt.band, tt.height, got, tt.want)
		}
	}
}

func TestBandValid(t *testing.T) {
	if !DefaultBand.Valid() {
		t.Error("DefaultBand invalid")
	}
	if (Band{0.6, 0.6}).Valid() {
		t.Error("overlapping margins reported valid")
	}
	if (Band{-0.1, 0}).Valid() {
		t.Error("negative margin reported valid")
	}
}

func TestObserverInitialActive(t *testing.T) {
	o := NewObserver(IDs())
	if o.Active() != Home {
		t.Errorf("Active() = %q, want home", o.Active())
	}
}

func TestObserverSequentialReports(t *testing.T) {
	o := NewObserver(IDs())
	o.Observe(page())
	o.Report(About, true)
	o.Report(Experience, true)
	if o.Active() != Experience {
		t.Errorf("Active() = %q, want experience", o.Active())
	}
}

func TestObserverLastReportWins(t *testing.T) {
	o := NewObserver(IDs())
	o.Observe(page())
	o.Report(Skills, true)
	o.Report(About, true)
	if o.Active() != About {
		t.Errorf("Active() = %q, want about (last report)", o.Active())
	}
}

func TestObserverLeavingReportKeepsActive(t *testing.T) {
	o := NewObserver(IDs())
	o.Observe(page())
	o.Report(Projects, true)
	o.Report(Projects, false)
	if o.Active() != Projects {
		t.Errorf("Active() = %q, want projects", o.Active())
	}
}

func TestObserverScroll(t *testing.T) {
	var changes []string
	o := NewObserver(IDs(), OnChange(func(id string) { changes = append(changes, id) }))
	o.Observe(page())

	o.Scroll(0, 30) // band line 6, inside home
	if o.Active() != Home {
		t.Errorf("offset 0: Active() = %q, want home", o.Active())
	}
	o.Scroll(20, 30) // band line 26, inside about
	if o.Active() != About {
		t.Errorf("offset 20: Active() = %q, want about", o.Active())
	}
	o.Scroll(75, 30) // band line 81, inside skills
	if o.Active() != Skills {
		t.Errorf("offset 75: Active() = %q, want skills", o.Active())
	}
	want := []string{About, Skills}
	if len(changes) != len(want) || changes[0] != want[0] || changes[1] != want[1] {
		t.Errorf("changes = %v, want %v", changes, want)
	}
}

func TestObserverScrolledFlag(t *testing.T) {
	o := NewObserver(IDs())
	o.Observe(page())
	o.Scroll(3, 30)
	if o.Scrolled() {
		t.Error("offset 3 reported scrolled")
	}
	o.Scroll(4, 30)
	if !o.Scrolled() {
		t.Error("offset 4 not reported scrolled")
	}
}

func TestObserverSkipsMissingTargets(t *testing.T) {
	spans := page()
	delete(spans, Projects)
	o := NewObserver(IDs())
	o.Observe(spans)

	if o.Watching() != 5 {
		t.Errorf("Watching() = %d, want 5", o.Watching())
	}
	o.Report(Projects, true)
	if o.Active() != Home {
		t.Errorf("report for unobserved id changed Active() to %q", o.Active())
	}
}

func TestObserverDisconnect(t *testing.T) {
	o := NewObserver(IDs())
	o.Observe(page())
	o.Report(About, true)
	o.Disconnect()

	if o.Watching() != 0 || o.Connected() {
		t.Errorf("after Disconnect Watching()=%d Connected()=%v", o.Watching(), o.Connected())
	}
	o.Report(Contact, true)
	o.Scroll(100, 30)
	if o.Active() != About {
		t.Errorf("events after Disconnect changed Active() to %q", o.Active())
	}
}

func TestObserverReobserveKeepsState(t *testing.T) {
	o := NewObserver(IDs())
	o.Observe(page())
	o.Scroll(20, 30)

	// Re-render with the same layout: about is still intersecting, so the
	// next scroll at the same offset must not report again.
	var changes int
	o.onChange = func(string) { changes++ }
	o.Observe(page())
	o.Scroll(20, 30)
	if changes != 0 {
		t.Errorf("re-observe produced %d spurious changes", changes)
	}
}

func TestInViewFiresOnce(t *testing.T) {
	v := NewInView(Projects, 2)
	spans := page() // projects at [60,80)

	if v.Check(spans, 0, 30) {
		t.Error("fired while projects far below")
	}
	if v.Check(spans, 31, 30) {
		t.Error("fired with projects only inside the bottom margin")
	}
	if !v.Check(spans, 35, 30) {
		t.Error("did not fire with projects in view")
	}
	if !v.Fired() {
		t.Error("Fired() = false")
	}
	if v.Check(spans, 0, 30) || v.Check(spans, 60, 30) {
		t.Error("fired again after first trigger")
	}
}

func TestInViewMissingTarget(t *testing.T) {
	v := NewInView("blog", 0)
	if v.Check(page(), 0, 200) {
		t.Error("fired for a section that is not rendered")
	}
}

func TestInViewMarginClamped(t *testing.T) {
	v := NewInView(Home, 50)
	if !v.Check(page(), 0, 10) {
		t.Error("huge margin should still leave the centre line visible")
	}
}
