package log_test

import (
	"os"

	"github.com/mutecomm/b64/log"
)

// This example shows when and how to use the critical log level.
func Example_critical() {
	alwaysFalseCondition := false
	// ...
	if alwaysFalseCondition {
		panic(log.Critical("package name: this condition should never be true"))
	}
}

// This example shows when and how to use the error log level.
func Example_error() {
	run := func() error {
		// calling external package which can produce an error
		fp, err := os.Open("filename")
		if err != nil {
			return log.Error(err)
		}
		return fp.Close()
	}
	_ = run()
}

// This example shows when and how to use the info log level.
func Example_info() {
	log.Info("codecengine: 42 bytes encoded")
}
