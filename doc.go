// Package mapper maps object graphs from one set of Go types to another according to declarative,
// per type pair specifications, preserving object identity within a mapping operation.
//
// # Basic Usage
//
//	r := mapper.New()
//	_, err := mapper.Register[*User, *UserDTO](r, mapper.MemberInit[*User, *UserDTO](
//	    mapper.Bind("Name", func(u *User) string { return u.Name }),
//	    mapper.Nested[*User, *User, *UserDTO]("Manager", func(u *User) *User { return u.Manager }),
//	))
//	dto, err := mapper.Map[*User, *UserDTO](r, user)
//
// # Specifications
//
// A MemberInit specification describes "allocate a destination struct and assign these members".
// Registration compiles it into a plan of member assignments with field indices resolved up front.
// Three executable forms run over the same plan:
//   - Mapper builds a new destination every time.
//   - MapperWithCache first asks the Context whether the source was already mapped. If so it returns
//     that destination untouched; otherwise it allocates one, registers it, then assigns members.
//     Registering before assigning is what lets a cycle resolve back to the instance being built.
//   - Populator assigns members onto a destination the caller already has.
//
// Transform and JSONTransform specifications are opaque functions. They map directly; their
// cache-aware form is the direct mapper and asking for their populator fails with ErrUnsupportedShape.
//
// # Identity
//
// The Context keys destinations by the reference identity of the source (pointer, map, slice or
// channel address plus type) and by destination type. Equal but distinct source objects map to
// distinct destinations. Values without reference identity are never cached, and neither are pointers
// to zero-size values, which need not have distinct addresses. A mapping that fails removes every
// instance it registered, so the Context never hands out a partially built destination.
//
// # Ignoring Fields
//
// Destination fields tagged `mapper:"-"` or `mapper:"ignore"` cannot be bound; binding one is a
// registration error.
//
// # Embedded Structs
//
// Embedded struct fields (including pointer-to-struct) are flattened and can be bound by their
// promoted name. Nil embedded pointers are allocated on assignment. A name promoted from two embedded
// structs at the same depth is ambiguous and cannot be bound. A struct embedding itself, directly or
// further down, is bound by the embedded field's name.
//
// Member values convert to the destination type only between numeric kinds or between types sharing
// an underlying type; integer to string and slice to array conversions are rejected.
//
// # Thread Safety
//
// Registration happens during configuration. The first mapping operation freezes the Registry; from
// then on it is read-only and safe to share between goroutines. A Context belongs to one operation
// at a time.
package mapper
