// Package calc implements the pocket calculator engine: a single display buffer driven
// by key symbols, and the evaluator behind the = and % keys.
//
// The package has no kernel or HAL dependencies so it can be tested and reused on its
// own; the calculator task wires it to the keypad and the framebuffer.
package calc
