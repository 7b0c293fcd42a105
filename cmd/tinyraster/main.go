package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
)

func init() {
	// SDL and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
