package skiplist

import "fmt"

func ExampleMap_Put() {
	m, _ := NewOrdered[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")
	old, replaced := m.Put(2, "TWO")
	fmt.Println(m.Len(), old, replaced)
	// Output: 2 two true
}

func ExampleMap_Get() {
	m, _ := NewOrdered[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")
	val, ok := m.Get(1)
	fmt.Printf("%s %t\n", val, ok)
	_, ok = m.Get(3)
	fmt.Println(ok)
	// Output: one true
	// false
}

func ExampleMap_Remove() {
	m, _ := NewOrdered[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")
	val, ok := m.Remove(1)
	fmt.Printf("%s %t\n", val, ok)
	fmt.Println(m.Len())
	// Output: one true
	// 1
}

func ExampleMap_All() {
	m, _ := NewOrdered[int, string]()
	m.Put(3, "three")
	m.Put(1, "one")
	m.Put(2, "two")
	for k, v := range m.All() {
		fmt.Printf("%d:%s ", k, v)
	}
	fmt.Println()
	// Output: 1:one 2:two 3:three
}

func ExampleNew() {
	m, err := New[string, int](func(a, b string) bool { return len(a) < len(b) || (len(a) == len(b) && a < b) },
		WithMaxLevel(8), WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, w := range []string{"ccc", "a", "bb", "aa"} {
		m.Put(w, len(w))
	}
	fmt.Println(m.Keys())
	// Output: [a aa bb ccc]
}
