/*
Package base36 converts between a non-negative offset and the compact lowercase token which
is embedded in a synthesized hostname. Tokens use the alphabet 0-9a-z with the most
significant digit first, so offset zero is "0", offset 35 is "z" and offset 36 is "10".

Offsets are *big.Int because an offset within an ipv6 range is up to 128 bits wide. The
package knows nothing about address ranges; callers add or subtract a range's base address
themselves.
*/
package base36
