//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the engine window with the default scene.
func (Run) Engine() error {
	fmt.Println("Run engine...")
	if _, err := executeCmd("go", withArgs("run", "main.go"), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders 120 frames without a window into out/.
func (Run) Headless() error {
	fmt.Println("Run engine headless...")
	args := []string{"run", "main.go", "-headless", "-frames", "120", "-out", "out/frame-%04d.png"}
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}
