package token

import "testing"

func TestMakePos(t *testing.T) {
	p := MakePos(3, 7)
	line, col := p.LineCol()
	if line != 3 || col != 7 {
		t.Errorf("want (3,7), got (%d,%d)", line, col)
	}
}

func TestPosUnknown(t *testing.T) {
	if !Pos(0).Unknown() {
		t.Errorf("zero Pos should be unknown")
	}
	if MakePos(1, 1).Unknown() {
		t.Errorf("(1,1) should not be unknown")
	}
}
