// Package ast defines the syntax tree of the die language and the traversal
// framework every semantic pass is built on.
//
// The node set is closed: Node and its refinements (Decl, Stmt, Expr,
// TypeExpr) carry unexported marker methods, so only this package can add
// variants. Walk and Children dispatch over the full set with a type switch;
// adding a node kind means extending both.
//
// The tree is acyclic and owned by its Program. Passes never store back
// references in nodes; they key side tables by node pointer instead.
package ast
