// Package dole holds the constants and formulas of the Dole (1970) accretion
// model as extended by Isaacman & Sagan and Fogg.
//
// Unless stated otherwise, masses are in solar masses, distances in AU and
// luminosities in solar luminosities. Every function is pure.
package dole
