/*
Package pds collects small persistent and bounded container types, together
with the generic plumbing they share.

The containers live in sub-packages: an immutable binary search tree with
structural sharing (persistent/bst) and a bounded growable string stack
with explicit ownership semantics (stack). Package seq provides the lazy
sequences produced by tree traversal, package maybe the optional values
used by non-destructive accessors.

The root package only holds the Ordered constraint and a pair of trivial
generic helpers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pds
