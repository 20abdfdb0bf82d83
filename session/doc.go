// Package session drives the interactive terminal loop: read a city name,
// read a radius and a metric selector, print the search report, repeat.
//
// Prompts and reports go to the output writer, error lines to the error
// writer. A line consisting of "0" or the end of input ends the session.
package session
