package logging_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trickstertwo/xtee/logging"
)

func Example() {
	cfg := logging.DefaultConfig()
	cfg.EnableConsole = false
	cfg.EnableFile = true
	cfg.LogFilePath = filepath.Join(os.TempDir(), "xtee-example", "app.log")

	if err := logging.Init(cfg); err != nil {
		panic(err)
	}
	defer logging.Close()

	logging.SetCallback(func(text string) { fmt.Println("gui:", text) })
	logging.SetLevel(logging.LevelDebug)

	logging.Debug("window created")
	logging.Trace("not shown")
	logging.Critical("device lost")
	// Output:
	// gui: window created
	// gui: device lost
}
