package mapper

import "testing"

func BenchmarkMap_Acyclic(b *testing.B) {
	r := newPersonRegistry(b)
	src := &person{Name: "bench", Age: 1, Home: &address{City: "a"}, Work: &address{City: "b"}, Friend: &person{Name: "f"}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Map[*person, *personDTO](r, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMap_Direct(b *testing.B) {
	r := newPersonRegistry(b)
	d, err := Resolve[*address, *addressDTO](r)
	if err != nil {
		b.Fatal(err)
	}
	fn := d.Mapper()
	src := &address{Street: "s", City: "c"}
	ctx := r.NewContext()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(src, ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMap_Cycle(b *testing.B) {
	r := newPersonRegistry(b)
	a := &person{Name: "a"}
	c := &person{Name: "c", Friend: a}
	a.Friend = c
	a.Self = a
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Map[*person, *personDTO](r, a); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMapSlice(b *testing.B) {
	r := newPersonRegistry(b)
	in := make([]*person, 100)
	for i := range in {
		in[i] = &person{Name: "p", Home: &address{City: "x"}}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := MapSlice[*person, *personDTO](r, in); err != nil {
			b.Fatal(err)
		}
	}
}
