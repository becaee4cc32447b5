package main

import "errors"

var errBookPathRequired = errors.New("c4solver: --book.path must be set")
