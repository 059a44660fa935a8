// Package validator provides precondition checks that fail with an error of
// the caller's choosing.
//
// Every check takes the value under test, optional check parameters, a label
// naming the value and an errkind.Kind. It returns nil when the constraint
// holds. Otherwise it returns exactly one error built by the kind, whose
// message is "<label> <constraint phrase>", for example
// "limit should be positive". Messages depend only on the check, the label
// and the parameters.
//
// # Absence
//
// Checks over strings, paths, slices and maps take optional.Value. Most of
// them treat an absent value as a pass so they can be combined with NotNull
// when absence is not allowed:
//
//	err := validator.First(
//	    validator.NotNullNorEmptyTrimmed(optional.FromPtr(req.Name), "name", errkind.Argument),
//	    validator.InRange(req.Age, 0, 150, true, true, "age", errkind.Argument),
//	)
//
// NotNull, InstanceOf and NullOrInstanceOf accept any value. They treat
// untyped nil, nil pointers, maps, slices, channels, funcs and interfaces, and
// absent optional.Value as absent.
//
// # Architecture
//
// Each source file groups a family of checks (string_rules.go,
// numeric_rules.go, map_rules.go, ...). Failures are routed through
// errkind.Construct / errkind.ConstructWithCause, so a kind that cannot be
// built surfaces as errkind.ErrNotConstructible instead of a nil error.
//
// The numeric family is generic over Numeric and covers both integer and
// floating point inputs with one implementation.
//
// # Concurrency
//
// The package holds no state and every check is safe for concurrent use. The
// only hazard is mutating a slice or map while a check scans it.
package validator
