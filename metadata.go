package mapper

import (
	"reflect"
)

type fieldInfo struct {
	index  []int
	name   string
	typ    reflect.Type
	ignore bool
}

type structMetadata struct {
	fields       []fieldInfo
	fieldsByName map[string]*fieldInfo
	ambiguous    map[string]bool // promoted at the same depth from more than one embedded struct
}

// WarmMetadata pre-builds field metadata for the given example values or types (T or *T).
func (r *Registry) WarmMetadata(examples ...any) {
	for _, e := range examples {
		if e == nil {
			continue
		}
		t := reflect.TypeOf(e)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			continue
		}
		_ = r.getOrBuildMetadata(t)
	}
}

func (r *Registry) getOrBuildMetadata(typ reflect.Type) *structMetadata {
	if cached, ok := r.metadataCache.Load(typ); ok {
		return cached.(*structMetadata)
	}
	fc := countFields(typ, map[reflect.Type]bool{typ: true})
	meta := &structMetadata{fields: make([]fieldInfo, 0, fc), fieldsByName: make(map[string]*fieldInfo, fc)}
	buildFieldMetadata(typ, meta, nil, map[reflect.Type]bool{typ: true})
	for i := range meta.fields {
		fi := &meta.fields[i]
		prev, ok := meta.fieldsByName[fi.name]
		switch {
		case !ok || len(fi.index) < len(prev.index):
			// the shallower field wins, as with Go's own promotion rules
			meta.fieldsByName[fi.name] = fi
			delete(meta.ambiguous, fi.name)
		case len(fi.index) == len(prev.index):
			if meta.ambiguous == nil {
				meta.ambiguous = make(map[string]bool)
			}
			meta.ambiguous[fi.name] = true
		}
	}
	for name := range meta.ambiguous {
		delete(meta.fieldsByName, name)
	}
	actual, _ := r.metadataCache.LoadOrStore(typ, meta)
	return actual.(*structMetadata)
}

// embeddedStruct returns the struct type f embeds and whether it is embedded through a pointer.
// ok is false for ordinary fields and for embeddings of a struct already on path, which are then
// treated as ordinary fields.
func embeddedStruct(f reflect.StructField, path map[reflect.Type]bool) (ft reflect.Type, isPtr, ok bool) {
	if !f.Anonymous {
		return nil, false, false
	}
	ft = f.Type
	isPtr = ft.Kind() == reflect.Pointer
	if isPtr {
		ft = ft.Elem()
	}
	if ft.Kind() != reflect.Struct || path[ft] {
		return nil, false, false
	}
	return ft, isPtr, true
}

func countFields(typ reflect.Type, path map[reflect.Type]bool) int {
	c := 0
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if ft, _, ok := embeddedStruct(f, path); ok {
			path[ft] = true
			c += countFields(ft, path)
			delete(path, ft)
			continue
		}
		if f.PkgPath != "" {
			continue
		}
		c++
	}
	return c
}

func buildFieldMetadata(typ reflect.Type, meta *structMetadata, prefix []int, path map[reflect.Type]bool) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if ft, isPtr, ok := embeddedStruct(f, path); ok {
			// an unexported embedded pointer cannot be allocated on write
			if isPtr && f.PkgPath != "" {
				continue
			}
			path[ft] = true
			buildFieldMetadata(ft, meta, idx, path)
			delete(path, ft)
			continue
		}
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get("mapper")
		ignore := tag == "ignore" || tag == "-"
		meta.fields = append(meta.fields, fieldInfo{index: idx, name: f.Name, typ: f.Type, ignore: ignore})
	}
}

// fieldByIndexAlloc walks index from v, allocating nil embedded pointers on the way.
func fieldByIndexAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}
