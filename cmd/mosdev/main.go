// Package main is the entry point for the MOS device manager.
package main

import "mos-device-mgr/cmd/mosdev/cmd"

func main() {
	cmd.Execute()
}
