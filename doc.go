// Package rpn turns flat expression strings into results and syntax trees by
// way of Reverse Polish Notation.
//
// The pipeline has three stages. Tokenize scans text like "2 ^^ 2 + 3 - 4"
// into tokens. ToRPN reorders the tokens with the shunting-yard algorithm so
// that every operator follows its operands. Finally, Evaluate runs the RPN on
// a stack machine, or BuildForest turns it into syntax tree nodes for display.
//
// The pipeline is lenient. Unknown operator symbols are not errors;
// they bind with precedence 90 and take two operands. Operators applied to too
// few operands use whatever the stack holds. The only errors are malformed
// numbers, unbalanced parentheses, and failures of registered functions.
package rpn
