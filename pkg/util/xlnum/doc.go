// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

/*
Package xlnum reproduces how a well-known spreadsheet application turns
doubles into cell text and how it compares two doubles.

Neither matches the usual double semantics. The application shows at most
15 significant digits, so Render(0.1+0.2) is "0.3" and not
"0.30000000000000004". It compares numbers through the same 15 digits, so
0.06-0.01 and 0.05 are Equal even though their bits differ. Denormals are
shown as zero, and infinities and NaNs, which the application never
produces in normal operation, are shown as large finite-looking numbers.
All of this is reproduced exactly, including behavior that looks like a
bug, because files written by the application depend on it.

Both operations are pure functions of their bit-pattern inputs and may be
called concurrently.

	xlnum.Render(756)                    // "756"
	xlnum.Render(1e20)                   // "1E+20"
	xlnum.RenderBits(0xFFFF0420003C0000) // "3.484840871308E+308"
	xlnum.Compare(0.06-0.01, 0.05)       // Equal, nil
*/
package xlnum
