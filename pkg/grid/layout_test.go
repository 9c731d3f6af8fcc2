package grid

import "testing"

func TestNewLayout_AllCellsEmpty(t *testing.T) {
	l := NewLayout(3, 2)
	if l.XSize != 3 || l.YSize != 2 {
		t.Fatalf("unexpected dims: %d x %d", l.XSize, l.YSize)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := l.At(x, y)
			if !c.IsEmpty() {
				t.Fatalf("cell (%d,%d) should start empty", x, y)
			}
			if c.X != x || c.Y != y {
				t.Fatalf("cell (%d,%d) has wrong coordinates: (%d,%d)", x, y, c.X, c.Y)
			}
		}
	}
}

func TestCellAt_OutOfRange(t *testing.T) {
	l := NewLayout(2, 2)
	if _, err := l.CellAt(-1, 0); err == nil {
		t.Fatalf("expected error for negative x")
	}
	if _, err := l.CellAt(2, 0); err == nil {
		t.Fatalf("expected error for x == xsize")
	}
	if _, err := l.CellAt(0, 2); err == nil {
		t.Fatalf("expected error for y == ysize")
	}
}

func TestResetGrid_PreservesConnectedAndContent(t *testing.T) {
	l := NewLayout(2, 1)
	ref := l.RefOf(l.At(0, 0))
	l.SetLabel(ref, 7)
	l.Cell(ref).DistFromSrc = 3
	l.ClaimForNet(ref, 5)

	l.ResetGrid()

	c := l.Cell(ref)
	if c.Label != 0 || c.DistFromSrc != 0 || c.Prev != None {
		t.Fatalf("transient state not cleared: %+v", c)
	}
	if !c.Connected || c.NetNum != 5 || c.Content != Net {
		t.Fatalf("connected/content should survive reset: %+v", c)
	}
}

func TestClaimForNet_SourceSinkContentImmutable(t *testing.T) {
	l := NewLayout(1, 1)
	c := l.At(0, 0)
	c.Content = Source
	c.NetNum = 1
	ref := l.RefOf(c)

	l.ClaimForNet(ref, 1)

	if c.Content != Source {
		t.Fatalf("source content must not change on claim, got %v", c.Content)
	}
	if !c.Connected {
		t.Fatalf("source should become connected")
	}
}

type recordingObserver struct {
	labelCalls    int
	contentCalls  int
	resetCalls    int
	finishedCalls int
}

func (r *recordingObserver) OnLabelChanged(x, y, label int)              { r.labelCalls++ }
func (r *recordingObserver) OnContentChanged(x, y int, c Content, n int) { r.contentCalls++ }
func (r *recordingObserver) OnGridReset()                                { r.resetCalls++ }
func (r *recordingObserver) OnRoutingFinished(routed, total int)         { r.finishedCalls++ }

func TestObserver_NotifiedOnMutation(t *testing.T) {
	l := NewLayout(1, 1)
	obs := &recordingObserver{}
	l.Observer = obs

	ref := l.RefOf(l.At(0, 0))
	l.SetLabel(ref, 3)
	l.ClaimForNet(ref, 1)
	l.ResetGrid()

	if obs.labelCalls == 0 {
		t.Fatalf("expected SetLabel to notify observer")
	}
	if obs.contentCalls != 1 {
		t.Fatalf("expected exactly one content-changed notification, got %d", obs.contentCalls)
	}
	if obs.resetCalls != 1 {
		t.Fatalf("expected exactly one grid-reset notification, got %d", obs.resetCalls)
	}
}
