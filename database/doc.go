/*
Package database provides the longest-prefix-match index used to answer reverse
queries. It is built once from a pool.Table and is read-only thereafter so there is no
internal concurrency protection.

Expected usage is:

    db, err := database.Build(table)
    if rec := db.Lookup(ip); rec != nil {
        ...
    }

Two records with an identical network would make a lookup ambiguous, so Add() rejects the
second one.
*/
package database
