// Package utils provides small helpers shared by the HTTP layer and the
// request pipeline: identifier generation, bearer header parsing and JSON
// response writing.
package utils
