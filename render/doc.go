// Package render provides a fluent object model for building fragments of
// PHP source code and rendering them as text.
//
// Every element implements [Node]. A node renders in one of two modes:
//
//   - compact: single line, no whitespace beyond what the syntax needs
//   - pretty: multi-line, four spaces per indent level
//
// Containers delegate to their children, so an entire file is rendered by
// calling Render on the outermost [Block]:
//
//	f := render.NewFunction("greet")
//	f.Accept("name").Type("string")
//	f.Return("string").Line(`return "Hello, " . $name;`)
//
//	f.Render(false, 0)
//	// function greet(string $name): string {return "Hello, " . $name;}
//
//	f.Render(true, 0)
//	// function greet(
//	//     string $name
//	// ): string
//	// {
//	//     return "Hello, " . $name;
//	// }
//
// # Values
//
// A [Value] holds raw code, a literal encoded by [Literal], a nested node,
// or a [Compilable] that is compiled each time the value renders. The last
// form lets a node reference content that is still being built.
//
// # Validation
//
// Names, type hints and raw code are emitted verbatim. The package is a
// formatter, not a validator.
package render
