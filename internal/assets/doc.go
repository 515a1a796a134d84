// Package assets provides the stylesheets embedded in HTML renderings.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── DirLoader         - {name}.css files from a directory on disk
//	    └── Resolver          - ordered chain, style directory then embedded
//
// DirLoader rejects names with path components and reads through os.Root,
// so a symlink cannot lead outside the style directory.
//
// # Built-in Styles
//
//   - letter: sans-serif office letter (default)
//   - plain: serif, minimal
package assets
