// Package tokens resolves dotted token paths against a render context and
// turns the values it finds into display strings.
//
// A render context is plain nested data: maps keyed by strings whose leaves
// are strings, numbers, booleans, times or slices. Lookups never fail; an
// absent segment simply yields nil. Formatting is driven by the token path:
// currency paths get two decimals, date paths get a long date, everything
// else is grouped, trimmed or stringified according to its shape.
//
// Template strings reference tokens as "{{ namespace.field }}". Fill and
// Formatter.FillString replace every reference; unresolvable references
// become empty strings.
package tokens
