// Package fixture loads waypoint test cases from text files and checks the
// waypoint search against their expected minimum times.
//
// Input format (whitespace separated):
//
//	k                 number of waypoints in the case; 0 ends the file
//	x y penalty       repeated k times
//
// Expected output format: one floating-point time per case, in order. The
// output file for "dir/sample_input_small.txt" is
// "dir/sample_output_small.txt" (see OutputPath).
//
// Every parsed case is wrapped with waypoint.Augment, so Case.Waypoints always
// starts at waypoint.Origin and ends at waypoint.Destination.
//
// Errors:
//
//   - ErrMalformedInput: a token is not a number of the expected kind.
//   - ErrTruncatedCase:  the input ended inside a case.
//   - ErrNegativeCount:  a case count is below zero.
package fixture
