// Package actions implements the command-line flag operations.
//
// A token starting with an operator sigil becomes an Action:
//
//	+name   enable
//	-name   disable
//	%name   reset (remove from the flag files)
//	?name   print the current state
//
// Any other token names a target package. An ActionSet collects packages and
// actions in command-line order, resolves every action against the packages
// seen before it, merges actions sharing an operator and a namespace and
// applies them in a fixed operator order.
package actions
