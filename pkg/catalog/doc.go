// Package catalog holds named badge icons.
//
// A [Catalog] is an ordered set of [Entry] values keyed by name. Entries keep
// the unresolved [badge.Spec] so a catalog can be written back to a file
// without baking in defaults; [Entry.Icon] resolves on demand.
//
// [Default] returns the built-in presets. [LoadFile] reads YAML or TOML
// catalogs:
//
//	icons:
//	  - name: wifi
//	    icon: wifi
//	    style:
//	      badge_color: blue
//	  - name: brand
//	    icon: "text:B"
//	    style:
//	      badge_color: "#5856d6"
//	      icon_padding: 0.2
//
// Hex colors must be quoted in YAML, where '#' starts a comment.
//
// Catalogs are built once and then read. They are safe for concurrent reads
// but not for concurrent Add or Merge.
package catalog
