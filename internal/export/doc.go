// Package export renders planetary systems for use outside the terminal.
//
// Two plot forms share one layout: semi-major axis on a log10 AU scale from
// 0.1 to 100, one circle per planet with radius proportional to the cube root
// of its mass, filled for gas giants.
//
//   - [PlanetsSVG]: standalone SVG document
//   - [PostScript]: minimal PostScript page writer, used by [WritePostScript]
//
// Tabular forms ([WriteJSON], [WriteCSV], [WriteText]) carry the same planets
// as data.
package export
