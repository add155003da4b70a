/*
Package domain contains the shared vocabulary of the drills module.

It holds the sentinel errors returned by the exercise packages so callers can
match failures with errors.Is regardless of which exercise produced them. The
package has no dependencies beyond the standard library.
*/
package domain
