package console

import (
	"testing"
)

func TestHistory_Add(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		add   []string
		want  []string
	}{
		{"keeps order", 5, []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"skips repeats", 5, []string{"a", "a", "b", "a"}, []string{"a", "b", "a"}},
		{"skips empty", 5, []string{"", "a", ""}, []string{"a"}},
		{"drops oldest", 2, []string{"a", "b", "c"}, []string{"b", "c"}},
		{"disabled", 0, []string{"a"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.limit)
			for _, line := range tt.add {
				h.Add(line)
			}
			if got := h.Entries(); !equalStrings(got, tt.want) {
				t.Errorf("Entries() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHistory_Navigation(t *testing.T) {
	h := NewHistory(10)
	if _, ok := h.Prev("typed"); ok {
		t.Errorf("Prev() on empty history ok = true, want false")
	}

	h.Add("first")
	h.Add("second")

	steps := []struct {
		op   string
		want string
		ok   bool
	}{
		{"prev", "second", true},
		{"prev", "first", true},
		{"prev", "first", true},
		{"next", "second", true},
		{"next", "typed", true},
		{"next", "", false},
	}

	for i, s := range steps {
		var got string
		var ok bool
		if s.op == "prev" {
			got, ok = h.Prev("typed")
		} else {
			got, ok = h.Next()
		}
		if got != s.want || ok != s.ok {
			t.Errorf("step %d %s() = (%q, %v), want (%q, %v)", i, s.op, got, ok, s.want, s.ok)
		}
	}
}

func TestHistory_AddResetsNavigation(t *testing.T) {
	h := NewHistory(10)
	h.Add("a")
	h.Add("b")
	h.Prev("")
	h.Add("c")

	if got, _ := h.Prev(""); got != "c" {
		t.Errorf("Prev() after Add = %q, want %q", got, "c")
	}
}

func TestHost_Take(t *testing.T) {
	h := NewHost()
	h.Clear()
	h.Exit()

	doClear, doExit := h.take()
	if !doClear || !doExit {
		t.Errorf("take() = (%v, %v), want (true, true)", doClear, doExit)
	}
	doClear, doExit = h.take()
	if doClear || doExit {
		t.Errorf("second take() = (%v, %v), want (false, false)", doClear, doExit)
	}
}

func TestCapture_DropsWhenFull(t *testing.T) {
	c := NewCapture(2)
	if _, err := c.Write([]byte("one\ntwo\nthree\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	for _, want := range []string{"one", "two"} {
		msg := c.wait()()
		if got := string(msg.(logLineMsg)); got != want {
			t.Errorf("wait() = %q, want %q", got, want)
		}
	}
	if n := len(c.lines); n != 0 {
		t.Errorf("buffered lines = %d, want 0", n)
	}
}

func TestNewCapture_DefaultSize(t *testing.T) {
	c := NewCapture(0)
	if got := cap(c.lines); got != DefaultCaptureBuffer {
		t.Errorf("cap(lines) = %d, want %d", got, DefaultCaptureBuffer)
	}
}

func TestRenderLine(t *testing.T) {
	tests := []struct {
		line Line
		want string
	}{
		{Line{Kind: LineEcho, Text: "$ help"}, EchoStyle.Render("$ help")},
		{Line{Kind: LineLog, Text: "msg=x"}, LogLineStyle.Render("msg=x")},
		{Line{Text: "[error] boom"}, ErrorStyle.Render("[error] boom")},
		{Line{Text: "[ok]"}, OkStyle.Render("[ok]")},
		{Line{Text: "[failed]"}, FailedStyle.Render("[failed]")},
		{Line{Text: "plain"}, OutputStyle.Render("plain")},
	}

	for _, tt := range tests {
		t.Run(tt.line.Text, func(t *testing.T) {
			if got := RenderLine(tt.line); got != tt.want {
				t.Errorf("RenderLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
