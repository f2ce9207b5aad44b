package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/samaamohammed255-droid/leaf-grace/internal/config"
	"github.com/samaamohammed255-droid/leaf-grace/internal/loop"
)

func main() {
	params, err := config.LoadParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{Params: params}); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
