package dotplot

import (
	"testing"
)

func TestFloatSet(t *testing.T) {
	a := NewFloatSet()
	if len(a) != 0 || len(a.Elements()) != 0 {
		t.Errorf("Got a = %v", a)
	}
	a.Add(17)
	a.Add(-2)
	a.Add(17)
	if elem := a.Elements(); len(elem) != 2 || elem[0] != -2 || elem[1] != 17 {
		t.Errorf("Got elem = %v", elem)
	}

	b := NewFloatSet(17, 0, 99, 0, -3.5)
	elem := b.Elements()
	if len(elem) != 4 || elem[0] != -3.5 || elem[1] != 0 || elem[3] != 99 {
		t.Errorf("Got elem = %v", elem)
	}
}
