package util

import "testing"

func TestListAddRemove(t *testing.T) {
	l := NewList[int](2)
	l.Add(1)
	l.Add(2)
	l.Add(3)
	if l.Length() != 3 {
		t.Errorf("l.Length() = %v; want 3", l.Length())
	}
	l.Remove(1)
	if l.Length() != 2 {
		t.Errorf("l.Length() = %v; want 2", l.Length())
	}
	if l[0] != 1 || l[1] != 3 {
		t.Errorf("l = %v; want [1 3]", l)
	}
}

func TestDictContainsKey(t *testing.T) {
	d := NewDict[int32, string](4)
	d[1] = "a"
	if !d.ContainsKey(1) {
		t.Errorf("d.ContainsKey(1) = false; want true")
	}
	if d.ContainsKey(2) {
		t.Errorf("d.ContainsKey(2) = true; want false")
	}
	d.Delete(1)
	if d.ContainsKey(1) {
		t.Errorf("d.ContainsKey(1) = true after Delete; want false")
	}
}

func TestOptional(t *testing.T) {
	none := None[int]()
	if none.HasValue() {
		t.Errorf("None().HasValue() = true; want false")
	}
	some := Some(5)
	if !some.HasValue() || some.Value != 5 {
		t.Errorf("Some(5) = %v; want value 5", some)
	}
}

func TestPriorityQueueOrdersByPriority(t *testing.T) {
	q := NewPriorityQueue[string, int]()
	q.Push("c", 3)
	q.Push("a", 1)
	q.Push("b", 2)

	order := []string{}
	for q.Len() > 0 {
		v, _ := q.Pop()
		order = append(order, v)
	}
	if order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v; want [a b c]", order)
	}
}

func TestFlags(t *testing.T) {
	const (
		FlagA byte = 1 << iota
		FlagB
	)
	f := NewFlags[byte]()
	f.Set(FlagA)
	if !f.IsSet(FlagA) {
		t.Errorf("f.IsSet(FlagA) = false; want true")
	}
	if f.IsSet(FlagB) {
		t.Errorf("f.IsSet(FlagB) = true; want false")
	}
	f.Unset(FlagA)
	if f.IsSet(FlagA) {
		t.Errorf("f.IsSet(FlagA) = true after Unset; want false")
	}
}
