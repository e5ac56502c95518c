// Package merge combines every namespace document of one language with the
// existing root document and writes the result back as the new root document.
// Namespaces are applied in discovery order and the root document last, so
// existing root values always win.
package merge
