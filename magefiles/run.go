//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the window on the configuration in $WIREFRAME_CONFIG, or the built-in demo scene.
func (Run) Engine() error {
	fmt.Println("Run engine...")
	_, err := executeCmd("go", withArgs(runArgs()...), withStream())
	return err
}

// Renders the configuration off-screen; headless_frames must be set in it.
func (Run) Headless() error {
	if os.Getenv("WIREFRAME_CONFIG") == "" {
		return fmt.Errorf("WIREFRAME_CONFIG must point to a configuration with headless_frames set")
	}
	fmt.Println("Run headless...")
	_, err := executeCmd("go", withArgs(runArgs()...), withStream())
	return err
}

func runArgs() []string {
	args := []string{"run", "."}
	if config := os.Getenv("WIREFRAME_CONFIG"); config != "" {
		args = append(args, config)
	}
	return args
}
