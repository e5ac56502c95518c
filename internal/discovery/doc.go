// Package discovery enumerates the language codes and namespace directories
// of an i18n tree. It never modifies the tree.
package discovery
