package aiks

import (
	"sync"
	"testing"
)

func TestPictureEmpty(t *testing.T) {
	pic, err := NewCanvas().EndRecordingAsPicture()
	if err != nil {
		t.Fatal(err)
	}
	if pic.Len() != 0 {
		t.Errorf("Len() = %d, want 0", pic.Len())
	}
	b, bounded := pic.Bounds()
	if !bounded || !b.IsEmpty() {
		t.Errorf("Bounds() = %+v, %v, want empty and bounded", b, bounded)
	}
}

func TestPictureOrderAndCounts(t *testing.T) {
	c := NewCanvas()
	p := NewPaint()
	c.Save()
	c.Translate(Pt(1, 1))
	c.ClipRect(MakeXYWH(0, 0, 5, 5))
	c.DrawPaint(p)
	c.DrawRect(MakeXYWH(0, 0, 1, 1), p)
	c.DrawCircle(Pt(0, 0), 1, p)
	_ = c.Restore()

	pic, err := c.EndRecordingAsPicture()
	if err != nil {
		t.Fatal(err)
	}
	want := []OpKind{OpSave, OpTransform, OpClipPath, OpDrawPaint, OpDrawRect, OpDrawPath, OpRestore}
	ops := pic.Operations()
	if len(ops) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(ops), len(want))
	}
	for i, k := range want {
		if ops[i].Kind() != k {
			t.Errorf("op %d = %v, want %v", i, ops[i].Kind(), k)
		}
	}
	if got := pic.Count(OpDrawPath); got != 1 {
		t.Errorf("Count(DrawPath) = %d, want 1", got)
	}
	if got := len(pic.Draws()); got != 3 {
		t.Errorf("len(Draws()) = %d, want 3", got)
	}
	if s := pic.Operation(0).(SaveOp); s.Depth != 2 {
		t.Errorf("SaveOp.Depth = %d, want 2", s.Depth)
	}
	if r := pic.Operation(6).(RestoreOp); r.Depth != 1 {
		t.Errorf("RestoreOp.Depth = %d, want 1", r.Depth)
	}
}

func TestPictureBounds(t *testing.T) {
	tests := []struct {
		name    string
		record  func(*Canvas)
		want    Rect
		bounded bool
	}{
		{
			name:    "fill rect",
			record:  func(c *Canvas) { c.DrawRect(MakeXYWH(10, 10, 20, 20), NewPaint()) },
			want:    MakeXYWH(10, 10, 20, 20),
			bounded: true,
		},
		{
			name: "stroke rect",
			record: func(c *Canvas) {
				p := NewPaint()
				p.Style = StyleStroke
				p.StrokeWidth = 4
				p.StrokeJoin = JoinBevel
				c.DrawRect(MakeXYWH(10, 10, 20, 20), p)
			},
			want:    MakeXYWH(8, 8, 24, 24),
			bounded: true,
		},
		{
			name: "scaled",
			record: func(c *Canvas) {
				c.Scale(Pt(2, 3))
				c.DrawRect(MakeXYWH(1, 1, 1, 1), NewPaint())
			},
			want:    MakeXYWH(2, 3, 2, 3),
			bounded: true,
		},
		{
			name: "clipped paint",
			record: func(c *Canvas) {
				c.ClipRect(MakeXYWH(0, 0, 50, 40))
				c.DrawPaint(NewPaint())
			},
			want:    MakeXYWH(0, 0, 50, 40),
			bounded: true,
		},
		{
			name: "clip trims draw",
			record: func(c *Canvas) {
				c.ClipRect(MakeXYWH(0, 0, 10, 10))
				c.DrawRect(MakeXYWH(5, 5, 100, 100), NewPaint())
			},
			want:    MakeXYWH(5, 5, 5, 5),
			bounded: true,
		},
		{
			name:    "unclipped paint",
			record:  func(c *Canvas) { c.DrawPaint(NewPaint()) },
			bounded: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas()
			tt.record(c)
			pic, err := c.EndRecordingAsPicture()
			if err != nil {
				t.Fatal(err)
			}
			got, bounded := pic.Bounds()
			if bounded != tt.bounded {
				t.Fatalf("bounded = %v, want %v", bounded, tt.bounded)
			}
			if bounded && got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPictureConcurrentReads(t *testing.T) {
	c := NewCanvas()
	for i := range 16 {
		c.DrawRect(MakeXYWH(float64(i), 0, 1, 1), NewPaint())
	}
	pic, _ := c.EndRecordingAsPicture()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n := len(pic.Draws()); n != 16 {
				t.Errorf("len(Draws()) = %d, want 16", n)
			}
			pic.Bounds()
		}()
	}
	wg.Wait()
}
