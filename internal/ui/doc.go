// Package ui provides theme and color support for the application's user
// interface. It defines ANSI color schemes for plain CLI output and
// lipgloss palettes for the inspector panel, so presentation stays
// consistent without coupling the core to any rendering layer.
package ui
