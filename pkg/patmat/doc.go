// Package patmat evaluates match expressions over a small value model:
// literals, wildcards, bindings, alternations, inclusive ranges,
// destructuring of tuples, structs and enum variants, `@` bindings,
// reference patterns and match guards.
//
// Patterns are checked for definition errors by Compile (or Validate)
// before any value is matched. A compiled Match selects the first arm
// whose pattern matches and whose guard accepts the resulting bindings.
package patmat
