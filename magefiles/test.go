//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the renderer tests with the race detector.
func (Test) Renderer() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./engine/renderer/...", "./engine/core/..."), withEnv("CGO_ENABLED=1"), withDir("."), withStream())
	return err
}
