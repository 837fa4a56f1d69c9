package ui

// HelpLines documents the viewer key bindings.
var HelpLines = []string{
	"space  pause / resume",
	"n      single step",
	"r      reset with same seed",
	"s      reset with new seed",
	"b      next boundary",
	"f      next family",
	"p      next preset",
	"0-8    toggle birth count",
	"shift+0-8  toggle survival count",
	"c      copy settings to log",
	"h      toggle this help",
	"q esc  quit",
}
