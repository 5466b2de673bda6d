/*
Package trie provides a spell-check style dictionary that stores words as a
shared-prefix tree of characters.

Words are folded to lower case (ASCII only) before every operation. Lookups
come in two flavours: FindWord follows the exact path of a word, and
FindWordApprox tolerates a bounded number of substituted, added or dropped
characters. RemoveWord trims the nodes of a word back to the nearest point
still shared with another word.
*/
package trie
