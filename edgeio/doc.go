// Package edgeio reads and writes plaintext edgelist files.
//
// The line format is "src dest weight" in weighted mode and "src dest" in
// unweighted mode (weight defaulted to 1). Lines that do not parse are
// silently skipped, so headers and comments pass through harmlessly. Export
// renders weights in %.10E (eleven significant digits), so a written file
// reloads to float64 values equal to the originals within about 5e-11
// relative error, not bit for bit.
//
// Directionality is not part of the file format; callers set the flag on the
// loaded container.
package edgeio
