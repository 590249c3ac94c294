package main

import (
	"go.uber.org/zap"
)

// newLogger returns a development logger when verbose, otherwise a nop
// logger so the pipeline stays quiet.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}
