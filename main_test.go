package main

import (
	"io"
	"log"
	"os"
	"testing"
)

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	setupLogging(false)
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}

	setupLogging(true)
	if log.Writer() != os.Stderr {
		t.Errorf("log output = %v, want os.Stderr", log.Writer())
	}
}
