package linear

import "testing"

func TestAlphabet(t *testing.T) {
	a := NewAlphabet()
	id0 := a.Add("hello")
	id1 := a.Add("world")
	id2 := a.Add("hello") // duplicate

	if id0 != 0 || id1 != 1 || id2 != 0 {
		t.Errorf("IDs: %d, %d, %d; want 0, 1, 0", id0, id1, id2)
	}
	if a.Size() != 2 {
		t.Errorf("Size = %d, want 2", a.Size())
	}
	if a.Get("missing") != -1 {
		t.Error("Get missing should return -1")
	}
}

func TestLabelMap(t *testing.T) {
	m := NewLabelMap()
	if idx := m.Add("NN"); idx != 0 {
		t.Errorf("Add(NN) = %d, want 0", idx)
	}
	if idx := m.Add("VB"); idx != 1 {
		t.Errorf("Add(VB) = %d, want 1", idx)
	}
	if idx := m.Add("NN"); idx != 0 {
		t.Errorf("re-Add(NN) = %d, want 0", idx)
	}
	if m.IndexOf("JJ") != -1 {
		t.Error("IndexOf unknown label should return -1")
	}
	if m.Label(1) != "VB" {
		t.Errorf("Label(1) = %q, want VB", m.Label(1))
	}
	if m.Size() != 2 {
		t.Errorf("Size = %d, want 2", m.Size())
	}
	labels := m.LabelList()
	if len(labels) != 2 || labels[0] != "NN" || labels[1] != "VB" {
		t.Errorf("LabelList = %v, want [NN VB]", labels)
	}
}

func TestStringFeatureVectorValues(t *testing.T) {
	v := NewStringFeatureVector()
	v.Add("a")
	v.Add("b")
	v.AddValued("c", 0.5)
	v.Add("d")

	if v.Size() != 4 {
		t.Fatalf("Size = %d, want 4", v.Size())
	}
	want := []float64{1, 1, 0.5, 1}
	for i, w := range want {
		if v.Value(i) != w {
			t.Errorf("Value(%d) = %g, want %g", i, v.Value(i), w)
		}
	}
}
