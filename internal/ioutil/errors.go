package ioutil

import "errors"

// ErrEmptyFile is returned when a trajectory file has no header line
// (i.e. is empty).
var ErrEmptyFile = errors.New("ioutil: file has no header line")
