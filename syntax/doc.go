// Package syntax decides the color of every token of a rendered line.
//
// Colors come from two tables. The static ColorTable maps keywords to color
// ids and is built once from a color configuration. The dynamic user-type
// table maps identifiers that follow the keyword "class" anywhere in the
// document; a background Scanner rebuilds it from a document snapshot on a
// fixed period and publishes it with an atomic swap, so the Classifier never
// observes a partially built table.
package syntax
